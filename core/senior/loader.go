package senior

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"nutricalc/internal/errors"
)

// policyFile is the HCL shape of a policy:
//
//	version = "senior-v1"
//
//	age_band {
//	  min_age = 65
//	  percent = -5
//	}
//
//	condition "Heart Disease" {
//	  flat = -100
//	}
type policyFile struct {
	Version    string           `hcl:"version"`
	AgeBands   []ageBandBlock   `hcl:"age_band,block"`
	Conditions []conditionBlock `hcl:"condition,block"`
}

type ageBandBlock struct {
	MinAge  int     `hcl:"min_age"`
	Percent float64 `hcl:"percent"`
}

type conditionBlock struct {
	Label   string   `hcl:"label,label"`
	Percent *float64 `hcl:"percent,optional"`
	Flat    *float64 `hcl:"flat,optional"`
}

// Load reads and validates a policy from an HCL file
func Load(path string) (*Policy, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypePolicy, err, "failed to read policy %s", path)
	}
	return Parse(src, path)
}

// Parse decodes and validates a policy from HCL source
func Parse(src []byte, filename string) (*Policy, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid policy syntax", diags)
	}

	var doc policyFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, errors.Parsing("invalid policy structure", diags)
	}

	p := &Policy{Version: doc.Version}
	for _, b := range doc.AgeBands {
		p.AgeBands = append(p.AgeBands, AgeBand{MinAge: b.MinAge, Percent: b.Percent})
	}
	for _, c := range doc.Conditions {
		p.Conditions = append(p.Conditions, ConditionRule{Label: c.Label, Percent: c.Percent, Flat: c.Flat})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Encode renders the policy as HCL that Parse accepts
func (p *Policy) Encode() []byte {
	doc := policyFile{Version: p.Version}
	for _, b := range p.AgeBands {
		doc.AgeBands = append(doc.AgeBands, ageBandBlock{MinAge: b.MinAge, Percent: b.Percent})
	}
	for _, c := range p.Conditions {
		doc.Conditions = append(doc.Conditions, conditionBlock{Label: c.Label, Percent: c.Percent, Flat: c.Flat})
	}

	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(&doc, f.Body())
	return f.Bytes()
}

// Validate checks the table is unambiguous
func (p *Policy) Validate() error {
	if p.Version == "" {
		return errors.Policy("policy version is required")
	}

	ages := make(map[int]bool)
	for _, b := range p.AgeBands {
		if b.MinAge <= 0 {
			return errors.Policy(fmt.Sprintf("age band min_age must be positive, got %d", b.MinAge))
		}
		if ages[b.MinAge] {
			return errors.Policy(fmt.Sprintf("duplicate age band for min_age %d", b.MinAge))
		}
		if b.Percent <= -100 {
			return errors.Policy(fmt.Sprintf("age band %d: percent must be above -100", b.MinAge))
		}
		ages[b.MinAge] = true
	}

	labels := make(map[string]bool)
	for _, c := range p.Conditions {
		key := normalize(c.Label)
		if key == "" {
			return errors.Policy("condition label must not be empty")
		}
		if labels[key] {
			return errors.Policy(fmt.Sprintf("duplicate condition %q", c.Label))
		}
		if (c.Percent == nil) == (c.Flat == nil) {
			return errors.Policy(fmt.Sprintf("condition %q must set exactly one of percent or flat", c.Label))
		}
		if c.Percent != nil && *c.Percent <= -100 {
			return errors.Policy(fmt.Sprintf("condition %q: percent must be above -100", c.Label))
		}
		labels[key] = true
	}
	return nil
}
