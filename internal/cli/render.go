package cli

import (
	"spread-optimizer/internal/models"
	"spread-optimizer/internal/report"
)

func renderResult(output *Output, res *models.OptimizationResult, req *models.OptimizationRequest) {
	report.NewRenderer(output.Writer()).RenderResult(res, req)
}

func renderCandidate(output *Output, c *models.SpreadCandidate, spot float64, quantity int) {
	report.NewRenderer(output.Writer()).RenderCandidate(c, spot, quantity)
}
