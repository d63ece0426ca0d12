package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sigkit/pkg/signature"
)

// contactFile is the YAML document read by render and vcard.
//
//	name: Jasmine Frank
//	title: Director of Marketing
//	email: jasmine.frank@zohocorp.com
//	style: modern
//	accent_color: "#E42527"
//	social:
//	  enabled: true
//	  channels: [linkedin, youtube]
//	  display_type: icons
type contactFile struct {
	signature.ContactRecord `yaml:",inline"`

	Style       signature.Style         `yaml:"style"`
	AccentColor string                  `yaml:"accent_color"`
	Social      signature.SocialOptions `yaml:"social"`
}

func readContactFile(path string) (contactFile, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return contactFile{}, fmt.Errorf("read contact file: %w", err)
	}
	return parseContact(data)
}

func parseContact(data []byte) (contactFile, error) {
	var c contactFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return contactFile{}, fmt.Errorf("parse contact file: %w", err)
	}
	return c, nil
}

func (c contactFile) renderConfig() signature.RenderConfig {
	return signature.RenderConfig{
		Data:          c.ContactRecord,
		Style:         c.Style,
		SocialOptions: c.Social,
		AccentColor:   c.AccentColor,
	}
}
