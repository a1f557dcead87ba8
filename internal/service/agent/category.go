package agent

import "strings"

// Category routes a query to the matching prompt template.
type Category string

const (
	CategoryTechnicalSupport  Category = "technical_support"
	CategoryBilling           Category = "billing"
	CategoryServiceRequest    Category = "service_request"
	CategoryAccountManagement Category = "account_management"
	CategoryGeneral           Category = "general_queries"
)

// Bucket order matters: "upgrade my account" is a service request, not
// account management, because the earlier bucket wins.
var categoryBuckets = []struct {
	category Category
	keywords []string
}{
	{CategoryTechnicalSupport, []string{"wi-fi", "internet", "connectivity"}},
	{CategoryBilling, []string{"bill", "payment", "balance"}},
	{CategoryServiceRequest, []string{"new connection", "upgrade", "install"}},
	{CategoryAccountManagement, []string{"password", "account"}},
}

// Categorize classifies a user query by keyword, falling back to the
// general bucket when nothing matches.
func Categorize(query string) Category {
	lower := strings.ToLower(query)
	for _, bucket := range categoryBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.category
			}
		}
	}
	return CategoryGeneral
}
