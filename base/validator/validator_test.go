package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "ens name",
			address:    "vitalik.eth",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestDisplayAddress() {
	s.Equal("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", DisplayAddress("0xd8da6bf26964af9d7eed9e03e53415d37aa96045"))
	s.Equal("0xabc", DisplayAddress("0xabc"))
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	type payload struct {
		Name string `validate:"required"`
	}
	v := NewCustomValidator(validator.New())
	s.Error(v.Validate(payload{}))
	s.NoError(v.Validate(payload{Name: "vitalik.eth"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
