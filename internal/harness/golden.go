package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/nextgearshop/storefront/internal/catalog"
)

// receiptSnapshot is the serialized form compared against golden files.
type receiptSnapshot struct {
	ScenarioName string    `json:"scenario_name"`
	Receipts     []Receipt `json:"receipts"`
}

// RunWithGolden executes a scenario and compares its receipts against a
// golden file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario cannot run; assertion failures and
// golden mismatches fail the test via t.
func RunWithGolden(t *testing.T, scenario *Scenario, c *catalog.Catalog) error {
	t.Helper()

	result, err := Run(scenario, c)
	if err != nil {
		return err
	}
	for _, assertErr := range result.Errors {
		t.Error(assertErr)
	}

	snapshot := receiptSnapshot{
		ScenarioName: result.ScenarioName,
		Receipts:     result.Receipts,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
