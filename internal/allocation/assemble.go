package allocation

import "github.com/bobmcallan/consilio/internal/models"

// Assemble transforms the allocation into the create-template payload
// lines: one (fund id, numeric target weighting) pair per selected fund
// with a positive amount, in selection order. No network here; the caller
// hands the result to the platform client.
func Assemble(s State) []models.TemplateFund {
	funds := make([]models.TemplateFund, 0, s.Len())
	for _, e := range s.Entries() {
		amount := e.Raw.Value()
		if amount <= 0 {
			continue
		}
		funds = append(funds, models.TemplateFund{
			FundID:          e.FundID,
			TargetWeighting: amount,
		})
	}
	return funds
}
