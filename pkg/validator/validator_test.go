package validator

import "testing"

type patientForm struct {
	PatientID string `validate:"required,patientid,max=50"`
	Name      string `validate:"required,min=1,max=255"`
	Age       *int   `validate:"required,gte=0,lte=120"`
	Sex       string `validate:"required,oneof=Male Female Other"`
	MobileNo  string `validate:"omitempty,mobile"`
}

func intPtr(v int) *int { return &v }

func validForm() patientForm {
	return patientForm{
		PatientID: "PT-001",
		Name:      "Asha",
		Age:       intPtr(34),
		Sex:       "Female",
	}
}

func TestValidateAgeBoundaries(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		age     int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{120, false},
		{121, true},
	}

	for _, tt := range tests {
		form := validForm()
		form.Age = intPtr(tt.age)
		err := v.Validate(&form)
		if (err != nil) != tt.wantErr {
			t.Errorf("age %d: err = %v, wantErr %v", tt.age, err, tt.wantErr)
		}
	}
}

func TestValidateMobile(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		mobile  string
		wantErr bool
	}{
		{"", false}, // optional
		{"9876543210", false},
		{"+91 9876543210", false},
		{"+1-5551234567", false},
		{"12345", true},
		{"not-a-number", true},
	}

	for _, tt := range tests {
		form := validForm()
		form.MobileNo = tt.mobile
		err := v.Validate(&form)
		if (err != nil) != tt.wantErr {
			t.Errorf("mobile %q: err = %v, wantErr %v", tt.mobile, err, tt.wantErr)
		}
	}
}

func TestValidatePatientID(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		id      string
		wantErr bool
	}{
		{"PT-001", false},
		{"p1", false},
		{"-leading", true},
		{"has space", true},
		{"", true}, // required
	}

	for _, tt := range tests {
		form := validForm()
		form.PatientID = tt.id
		err := v.Validate(&form)
		if (err != nil) != tt.wantErr {
			t.Errorf("patient ID %q: err = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}

func TestValidateSexEnum(t *testing.T) {
	v := NewValidator()

	form := validForm()
	form.Sex = "Unknown"
	if err := v.Validate(&form); err == nil {
		t.Error("sex outside the enum passed validation")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	form := validForm()
	form.Name = ""
	form.MobileNo = "12345"
	err := v.Validate(&form)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	formatted := v.FormatValidationErrors(err)
	if formatted["Name"] != "Name is required" {
		t.Errorf("Name message: %q", formatted["Name"])
	}
	if formatted["MobileNo"] != "MobileNo must be a valid mobile number" {
		t.Errorf("MobileNo message: %q", formatted["MobileNo"])
	}
}
