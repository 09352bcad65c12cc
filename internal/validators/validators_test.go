package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	for _, ok := range []string{"ann@x.com", "a.b@c.d.e", "x+y@host.io"} {
		assert.True(t, IsEmail(ok), ok)
	}
	for _, bad := range []string{"", "ann", "ann@x", "ann @x.com", "@x.com", "ann@.com "} {
		assert.False(t, IsEmail(bad), bad)
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("1234567890"))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("12345678901"))
	assert.False(t, IsPhone("123-456-789"))
	assert.False(t, IsPhone("١٢٣٤٥٦٧٨٩٠"))
}

func TestIsPassword(t *testing.T) {
	assert.False(t, IsPassword("12345"))
	assert.True(t, IsPassword("secret"))
	assert.True(t, IsPassword("ñññññá"))
}

func TestPhoneFeedback(t *testing.T) {
	assert.Equal(t, "12345", DigitsOnly("12-3a4 5"))

	assert.Equal(t, "", PhoneHint(""))
	assert.Equal(t, "Phone number must be exactly 10 digits (5/10)", PhoneHint("12345"))
	assert.Equal(t, "", PhoneHint("1234567890"))

	assert.Equal(t, "", PhoneBlurError("1234567890"))
	assert.Equal(t, "Phone number must be exactly 10 digits", PhoneBlurError("123"))
	assert.Equal(t, "Phone number cannot exceed 10 digits", PhoneBlurError("123456789012"))
}

func TestEmailError(t *testing.T) {
	assert.Equal(t, "", EmailError(""))
	assert.Equal(t, "", EmailError("ann@x.com"))
	assert.Equal(t, "Please enter a valid email address", EmailError("ann@"))
}

func TestRegisterBindings(t *testing.T) {
	assert.NoError(t, RegisterBindings())
}

type contactForm struct {
	Email string `json:"email" binding:"looseemail"`
	Phone string `json:"phone" binding:"phone10"`
	Alt   string `json:"alt_phone" binding:"phone10=optional"`
}

func TestBindings_CheckTrimmedValues(t *testing.T) {
	require.NoError(t, RegisterBindings())

	assert.NoError(t, binding.Validator.ValidateStruct(&contactForm{
		Email: " ann@x.com ", Phone: "1234567890 ", Alt: "  ",
	}))
	assert.NoError(t, binding.Validator.ValidateStruct(&contactForm{
		Email: "ann@x.com", Phone: "1234567890", Alt: " 0987654321",
	}))

	cases := []struct {
		name  string
		form  contactForm
		field string
	}{
		{"blank email", contactForm{Email: "   ", Phone: "1234567890"}, "email"},
		{"short phone", contactForm{Email: "ann@x.com", Phone: " 12345 "}, "phone"},
		{"blank required phone", contactForm{Email: "ann@x.com", Phone: "  "}, "phone"},
		{"bad optional phone", contactForm{Email: "ann@x.com", Phone: "1234567890", Alt: "12"}, "alt_phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tc.form)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field())
		})
	}
}
