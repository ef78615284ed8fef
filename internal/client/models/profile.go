package models

// Profile is the singleton per-user profile. Everything except Name is
// optional.
type Profile struct {
	Name             string `json:"name"`
	DateOfBirth      string `json:"dob,omitempty"`
	BloodGroup       string `json:"bloodGroup,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	LicenseNumber    string `json:"licenseNumber,omitempty"`
	LicenseExpiry    string `json:"licenseExpiry,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
	AvatarURL        string `json:"avatarUrl,omitempty"`
}

// ProfilePatch carries a partial profile update. Nil fields are unchanged.
type ProfilePatch struct {
	Name             *string
	DateOfBirth      *string
	BloodGroup       *string
	Phone            *string
	Address          *string
	LicenseNumber    *string
	LicenseExpiry    *string
	EmergencyContact *string
	AvatarURL        *string
}

func (p ProfilePatch) Apply(pr *Profile) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.DateOfBirth != nil {
		pr.DateOfBirth = *p.DateOfBirth
	}
	if p.BloodGroup != nil {
		pr.BloodGroup = *p.BloodGroup
	}
	if p.Phone != nil {
		pr.Phone = *p.Phone
	}
	if p.Address != nil {
		pr.Address = *p.Address
	}
	if p.LicenseNumber != nil {
		pr.LicenseNumber = *p.LicenseNumber
	}
	if p.LicenseExpiry != nil {
		pr.LicenseExpiry = *p.LicenseExpiry
	}
	if p.EmergencyContact != nil {
		pr.EmergencyContact = *p.EmergencyContact
	}
	if p.AvatarURL != nil {
		pr.AvatarURL = *p.AvatarURL
	}
}
