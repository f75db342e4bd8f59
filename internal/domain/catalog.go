package domain

import "strings"

// IntentPlaceholder is the substitution marker every template must contain.
const IntentPlaceholder = "{intent}"

// CatalogEntry maps one agent to the intent phrases it owns.
type CatalogEntry struct {
	AgentID string   `yaml:"agent"   json:"agent"`
	Intents []string `yaml:"intents" json:"intents"`
}

// Catalog is the ordered agent → intents table. Entry order matters:
// generation walks the catalog in order, which keeps seeded runs reproducible.
type Catalog []CatalogEntry

// NumIntents returns the total number of intent phrases across all agents.
func (c Catalog) NumIntents() int {
	n := 0
	for _, e := range c {
		n += len(e.Intents)
	}
	return n
}

// Has reports whether agentID is present in the catalog.
func (c Catalog) Has(agentID string) bool {
	for _, e := range c {
		if e.AgentID == agentID {
			return true
		}
	}
	return false
}

// Owns reports whether intent belongs to agentID's intent list.
func (c Catalog) Owns(agentID, intent string) bool {
	for _, e := range c {
		if e.AgentID != agentID {
			continue
		}
		for _, i := range e.Intents {
			if i == intent {
				return true
			}
		}
		return false
	}
	return false
}

// Template is an utterance skeleton carrying exactly one IntentPlaceholder.
type Template string

// Fill substitutes intent into the placeholder.
func (t Template) Fill(intent string) string {
	return strings.Replace(string(t), IntentPlaceholder, intent, 1)
}

// Valid reports whether the template carries exactly one placeholder.
func (t Template) Valid() bool {
	return strings.Count(string(t), IntentPlaceholder) == 1
}
