package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Site holds the business facts interpolated into prompts and fallback
// content: practice identity, location, specialisms, fees and contact details.
type Site struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	URL         string `yaml:"url" validate:"omitempty,url"`

	Location struct {
		Area     string `yaml:"area" validate:"required"`
		City     string `yaml:"city" validate:"required"`
		County   string `yaml:"county" validate:"required"`
		Country  string `yaml:"country"`
		Postcode string `yaml:"postcode"`
	} `yaml:"location"`

	Therapist struct {
		Name           string `yaml:"name" validate:"required"`
		Title          string `yaml:"title" validate:"required"`
		Qualifications string `yaml:"qualifications"`
		Experience     string `yaml:"experience"`
	} `yaml:"therapist"`

	Specialisms []Specialism `yaml:"specialisms" validate:"required,min=1,dive"`

	Fees struct {
		Initial       int    `yaml:"initial" validate:"gt=0"`
		Standard      int    `yaml:"standard" validate:"gt=0"`
		Concession    int    `yaml:"concession" validate:"gt=0"`
		Currency      string `yaml:"currency" validate:"required"`
		SessionLength string `yaml:"session_length" validate:"required"`
	} `yaml:"fees"`

	Contact struct {
		Email string `yaml:"email" validate:"required,email"`
		Phone string `yaml:"phone" validate:"required"`
	} `yaml:"contact"`
}

// Specialism is a named service offering with its marketing description.
type Specialism struct {
	Name        string   `yaml:"name" validate:"required"`
	Slug        string   `yaml:"slug" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Keywords    []string `yaml:"keywords"`
}

// DefaultSite returns the compiled-in configuration for MM Counselling.
func DefaultSite() Site {
	var s Site
	s.Name = "MM Counselling"
	s.Description = "Professional counselling services in Southsea, Portsmouth. Specialising in ADHD support and trauma therapy across Hampshire."
	s.URL = "https://mmcounselling.co.uk"

	s.Location.Area = "Southsea"
	s.Location.City = "Portsmouth"
	s.Location.County = "Hampshire"
	s.Location.Country = "United Kingdom"
	s.Location.Postcode = "PO5"

	s.Therapist.Name = "Marion"
	s.Therapist.Title = "Marion Mitchell"
	s.Therapist.Qualifications = "MBACP, Dip. Counselling"
	s.Therapist.Experience = "10+ years"

	s.Specialisms = []Specialism{
		{
			Name:        "ADHD Support",
			Slug:        "adhd",
			Description: "Specialist counselling for adults with ADHD, helping you understand your neurodivergent mind and develop effective coping strategies.",
			Keywords:    []string{"ADHD counselling Portsmouth", "ADHD therapy Hampshire", "adult ADHD support Southsea"},
		},
		{
			Name:        "Trauma Therapy",
			Slug:        "trauma",
			Description: "Compassionate trauma-informed therapy using evidence-based approaches to help you process difficult experiences and move forward.",
			Keywords:    []string{"trauma counselling Portsmouth", "trauma therapy Hampshire", "PTSD support Southsea"},
		},
		{
			Name:        "Anxiety & Depression",
			Slug:        "anxiety-depression",
			Description: "Understanding and managing anxiety and depression through person-centred counselling approaches.",
			Keywords:    []string{"anxiety counselling Portsmouth", "depression therapy Hampshire", "mental health support Southsea"},
		},
		{
			Name:        "Relationship Issues",
			Slug:        "relationships",
			Description: "Support for navigating relationship difficulties, communication challenges, and personal boundaries.",
			Keywords:    []string{"relationship counselling Portsmouth", "couples therapy Hampshire"},
		},
	}

	s.Fees.Initial = 50
	s.Fees.Standard = 55
	s.Fees.Concession = 45
	s.Fees.Currency = "GBP"
	s.Fees.SessionLength = "50 minutes"

	s.Contact.Email = "marion@mmcounselling.co.uk"
	s.Contact.Phone = "07XXX XXXXXX"

	return s
}

// LoadSite returns the site configuration, overridden from a YAML file when a
// path is given, and validates the result.
func LoadSite(path string) (Site, error) {
	site := DefaultSite()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Site{}, fmt.Errorf("read site config: %w", err)
		}
		if err := yaml.Unmarshal(data, &site); err != nil {
			return Site{}, fmt.Errorf("parse site config: %w", err)
		}
	}

	if err := validator.New().Struct(site); err != nil {
		return Site{}, fmt.Errorf("validate site config: %w", err)
	}

	return site, nil
}
