// Package knowledge holds the static company knowledge base: services,
// pricing, contact data, team facts, and the delivery process. It is loaded
// once at startup and never mutated afterwards.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
)

// Company describes the company itself.
type Company struct {
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	About      string `json:"about"`
	Foundation string `json:"foundation"`
	Mission    string `json:"mission"`
	Clients    string `json:"clients"`
}

// Service is one offered service, keyed for programmatic lookup.
type Service struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Timeline     string   `json:"timeline"`
}

// PricingEntry is the starting price for a service key.
type PricingEntry struct {
	Key         string `json:"key"`
	Start       int    `json:"start"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// Contact holds the company's contact channels.
type Contact struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Website       string `json:"website"`
	BusinessHours string `json:"business_hours"`
}

// Team describes the team behind the services.
type Team struct {
	Size           string   `json:"size"`
	Expertise      []string `json:"expertise"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
}

// ProcessStep is one step of the delivery pipeline. Slice position is the
// pipeline position: the declaration order of steps is the order quoted to
// users.
type ProcessStep struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Base is the full knowledge base. Services and Process are ordered slices
// rather than maps because their declaration order is part of the contract
// (service listings and the numbered process rendering).
type Base struct {
	Company        Company        `json:"company"`
	Services       []Service      `json:"services"`
	Pricing        []PricingEntry `json:"pricing"`
	EnterpriseNote string         `json:"enterprise_note"`
	Contact        Contact        `json:"contact"`
	Team           Team           `json:"team"`
	Process        []ProcessStep  `json:"process"`
}

// Service returns the service for key. The second return is false on a miss;
// callers fall back to a generic response, a miss is never an error.
func (b *Base) Service(key string) (Service, bool) {
	for _, s := range b.Services {
		if s.Key == key {
			return s, true
		}
	}
	return Service{}, false
}

// PricingFor returns the pricing entry for a service key.
func (b *Base) PricingFor(key string) (PricingEntry, bool) {
	for _, p := range b.Pricing {
		if p.Key == key {
			return p, true
		}
	}
	return PricingEntry{}, false
}

// ServiceNames returns the display names of all services in declaration order.
func (b *Base) ServiceNames() []string {
	names := make([]string, len(b.Services))
	for i, s := range b.Services {
		names[i] = s.Name
	}
	return names
}

// canonicalKeys are the service keys that entity extraction can resolve to.
// Validate guarantees they all exist so response generation never dead-ends
// on a recognized entity.
var canonicalKeys = []string{
	"web_development",
	"mobile_development",
	"cloud_solutions",
	"ai_ml",
	"digital_marketing",
	"ui_ux",
}

// Validate checks the cross-reference invariants of the knowledge base:
// every pricing key and every canonical entity target must name a declared
// service, and the process pipeline must not be empty.
func (b *Base) Validate() error {
	if b.Company.Name == "" {
		return fmt.Errorf("knowledge: company name is empty")
	}
	if len(b.Services) == 0 {
		return fmt.Errorf("knowledge: no services declared")
	}
	for _, p := range b.Pricing {
		if _, ok := b.Service(p.Key); !ok {
			return fmt.Errorf("knowledge: pricing key %q has no matching service", p.Key)
		}
	}
	for _, key := range canonicalKeys {
		if _, ok := b.Service(key); !ok {
			return fmt.Errorf("knowledge: canonical service %q is not declared", key)
		}
	}
	if len(b.Process) == 0 {
		return fmt.Errorf("knowledge: process steps are empty")
	}
	return nil
}

// Load reads a knowledge base from a JSON file. An empty path returns the
// built-in data. The loaded base is validated before use.
func Load(path string) (*Base, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge file: %w", err)
	}
	var b Base
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing knowledge file %s: %w", path, err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}
