package vcard_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigkit/pkg/signature"
	"github.com/dmitrymomot/sigkit/pkg/vcard"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	card, err := vcard.Build(signature.ContactRecord{
		Name:       "Jasmine Frank",
		Title:      "Director of Marketing",
		Department: "Zoho One",
		Email:      "jasmine.frank@zohocorp.com",
		Phone:      "+1 (281) 330-8004",
		LinkedIn:   "https://www.linkedin.com/in/jasminefrank",
		Twitter:    "@jfrank",
		Website:    "www.zoho.com/one",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(card, "\r\n"), "\r\n")
	assert.Equal(t, []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Frank;Jasmine;;;",
		"FN:Jasmine Frank",
		"TITLE:Director of Marketing",
		"ORG:Zoho;Zoho One",
		"EMAIL;TYPE=INTERNET,WORK:jasmine.frank@zohocorp.com",
		"TEL;TYPE=WORK,VOICE:+12813308004",
		"URL:https://www.zoho.com/one",
		"X-SOCIALPROFILE;TYPE=linkedin:https://www.linkedin.com/in/jasminefrank",
		"X-SOCIALPROFILE;TYPE=twitter:https://x.com/jfrank",
		"END:VCARD",
	}, lines)
}

func TestBuild_Options(t *testing.T) {
	t.Parallel()

	card, err := vcard.Build(
		signature.ContactRecord{Name: "Cher", Twitter: "cher"},
		vcard.WithOrganization(""),
		vcard.WithoutSocialProfiles(),
	)
	require.NoError(t, err)
	assert.Contains(t, card, "N:;Cher;;;\r\n")
	assert.NotContains(t, card, "ORG:")
	assert.NotContains(t, card, "X-SOCIALPROFILE")
}

func TestBuild_Escaping(t *testing.T) {
	t.Parallel()

	card, err := vcard.Build(signature.ContactRecord{
		Name:     "Frank, Jasmine",
		Title:    `Sales; EMEA \ APAC`,
		Bookings: "javascript:alert(1)",
		Website:  "javascript:alert(1)",
	})
	require.NoError(t, err)
	assert.Contains(t, card, `FN:Frank\, Jasmine`)
	assert.Contains(t, card, `TITLE:Sales\; EMEA \\ APAC`)
	assert.NotContains(t, card, "URL:")
	assert.NotContains(t, card, "javascript")
}

func TestBuild_Folding(t *testing.T) {
	t.Parallel()

	card, err := vcard.Build(signature.ContactRecord{
		Name:  "Jasmine Frank",
		Title: strings.Repeat("Ångström ", 20),
	})
	require.NoError(t, err)

	for _, line := range strings.Split(card, "\r\n") {
		assert.LessOrEqual(t, len(line), 75, line)
	}
	unfolded := strings.ReplaceAll(card, "\r\n ", "")
	assert.Contains(t, unfolded, "TITLE:"+strings.TrimSpace(strings.Repeat("Ångström ", 20)))
}

func TestBuild_RequiresName(t *testing.T) {
	t.Parallel()

	_, err := vcard.Build(signature.ContactRecord{Email: "a@zohocorp.com", Name: " \n "})
	assert.True(t, errors.Is(err, vcard.ErrNameRequired))
}
