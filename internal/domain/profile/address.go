package profile

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/hirecoder/backend/internal/domain/shared"
)

var zipCodePattern = regexp.MustCompile(`^[a-zA-Z0-9\- ]{1,10}$`)

// AddressInput carries the editable address fields. Every field is optional.
type AddressInput struct {
	AddressLine1 string
	AddressLine2 string
	Country      string
	City         string
	State        string
	ZipCode      string
}

func (in AddressInput) validate() (AddressInput, error) {
	var verrs shared.ValidationErrors
	in.AddressLine1 = checkText(&verrs, "address_line_1", in.AddressLine1, 200, false)
	in.AddressLine2 = checkText(&verrs, "address_line_2", in.AddressLine2, 200, false)
	in.Country = checkText(&verrs, "country", in.Country, 100, false)
	in.City = checkText(&verrs, "city", in.City, 100, false)
	in.State = checkText(&verrs, "state", in.State, 100, false)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
	if in.ZipCode != "" && !zipCodePattern.MatchString(in.ZipCode) {
		verrs.Add("zip_code", "Enter a valid zip code.")
	}
	return in, verrs.Err()
}

// Address is the single postal address of a user
type Address struct {
	shared.BaseEntity
	UserID uuid.UUID
	AddressInput
}

// NewAddress creates the address of userID
func NewAddress(userID uuid.UUID, in AddressInput) (*Address, error) {
	in, err := in.validate()
	if err != nil {
		return nil, err
	}
	return &Address{BaseEntity: shared.NewBaseEntity(), UserID: userID, AddressInput: in}, nil
}

// Update replaces every field of the address
func (a *Address) Update(in AddressInput) error {
	in, err := in.validate()
	if err != nil {
		return err
	}
	a.AddressInput = in
	a.Touch()
	return nil
}
