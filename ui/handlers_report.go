package ui

import (
	"fmt"
	"net/http"
	"strings"

	"gobasket/domain/core"
	"gobasket/domain/mining"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleResultReport renders a stored result as an HTML report
func (s *Server) handleResultReport(c *gin.Context) {
	id, err := core.ParseResultID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result id"})
		return
	}
	result, err := s.container.ResultRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		s.logger.Error("failed to get result: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve result"})
		return
	}

	md := renderResultMarkdown(result)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	c.Data(http.StatusOK, "text/html; charset=utf-8", markdown.ToHTML([]byte(md), p, renderer))
}

// renderResultMarkdown builds the markdown summary of one mining run
func renderResultMarkdown(r *mining.MiningResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Mining Result %s\n\n", r.ID)
	fmt.Fprintf(&b, "- **Algorithm:** %s\n", r.Algorithm)
	fmt.Fprintf(&b, "- **Min support:** %.4f\n", r.Parameters.MinSupport)
	fmt.Fprintf(&b, "- **Min confidence:** %.4f\n", r.Parameters.MinConfidence)
	fmt.Fprintf(&b, "- **Execution time:** %.3f ms\n", r.ExecutionTimeMs)
	fmt.Fprintf(&b, "- **Created:** %s\n\n", r.CreatedAt)

	fmt.Fprintf(&b, "## Frequent Itemsets (%d)\n\n", len(r.FrequentItemsets))
	if len(r.FrequentItemsets) > 0 {
		b.WriteString("| Itemset | Support | Count |\n|---|---|---|\n")
		for _, fi := range r.FrequentItemsets {
			fmt.Fprintf(&b, "| %s | %.4f | %d |\n", strings.Join(fi.Items, ", "), fi.Support, fi.Count)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Association Rules (%d)\n\n", len(r.AssociationRules))
	if len(r.AssociationRules) > 0 {
		b.WriteString("| Antecedent | Consequent | Support | Confidence | Lift |\n|---|---|---|---|---|\n")
		for _, rule := range r.AssociationRules {
			fmt.Fprintf(&b, "| %s | %s | %.4f | %.4f | %.4f |\n",
				strings.Join(rule.Antecedent, ", "),
				strings.Join(rule.Consequent, ", "),
				rule.Support, rule.Confidence, rule.Lift)
		}
		b.WriteString("\n")
	}

	return b.String()
}
