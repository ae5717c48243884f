package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted shopping session against the cart engine.
// Scenarios drive the engine through a sequence of user actions and assert
// on derived values along the way; checkouts produce receipts that can be
// compared against golden files.
type Scenario struct {
	// Name uniquely identifies this scenario. Also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// OrderNumbers are the fixed order numbers handed out in sequence, one
	// per checkout step. Required if the scenario checks out: deterministic
	// receipts need deterministic numbers.
	OrderNumbers []string `yaml:"order_numbers,omitempty"`

	// Steps is the scripted action sequence.
	Steps []Step `yaml:"steps"`
}

// Step is one scripted user action.
type Step struct {
	// Action is one of: add, remove, update, clear, checkout, assert.
	Action string `yaml:"action"`

	// Product is the product id (add, remove, update).
	Product int64 `yaml:"product,omitempty"`

	// Quantity is the replacement quantity (update).
	Quantity int `yaml:"quantity,omitempty"`

	// Expect holds the derived-value checks (assert).
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect asserts on the engine's derived values at a point in the script.
// Nil fields are not checked.
type Expect struct {
	Subtotal *float64 `yaml:"subtotal,omitempty"`
	Shipping *float64 `yaml:"shipping,omitempty"`
	Tax      *float64 `yaml:"tax,omitempty"`
	Total    *float64 `yaml:"total,omitempty"`
	// Items is the total item count (sum of quantities).
	Items *int `yaml:"items,omitempty"`
	// Lines is the number of distinct line items.
	Lines *int `yaml:"lines,omitempty"`
}

// Step action constants.
const (
	StepAdd      = "add"
	StepRemove   = "remove"
	StepUpdate   = "update"
	StepClear    = "clear"
	StepCheckout = "checkout"
	StepAssert   = "assert"
)

var validStepActions = map[string]bool{
	StepAdd:      true,
	StepRemove:   true,
	StepUpdate:   true,
	StepClear:    true,
	StepCheckout: true,
	StepAssert:   true,
}

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so a typo ("step:" for "steps:") fails loudly
// instead of silently running an empty scenario.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// validate checks structural requirements before execution.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario is missing a name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}

	var checkouts int
	for i, step := range s.Steps {
		if !validStepActions[step.Action] {
			return fmt.Errorf("scenario %q step %d: unknown action %q", s.Name, i, step.Action)
		}
		switch step.Action {
		case StepAdd, StepRemove, StepUpdate:
			if step.Product == 0 {
				return fmt.Errorf("scenario %q step %d: %s requires a product id", s.Name, i, step.Action)
			}
		case StepAssert:
			if step.Expect == nil {
				return fmt.Errorf("scenario %q step %d: assert requires an expect block", s.Name, i)
			}
		case StepCheckout:
			checkouts++
		}
	}

	if checkouts > len(s.OrderNumbers) {
		return fmt.Errorf("scenario %q has %d checkout steps but only %d order_numbers", s.Name, checkouts, len(s.OrderNumbers))
	}

	return nil
}
