package domain

import "strings"

// Category is the statement category an account code classifies into.
type Category string

const (
	CategoryAsset            Category = "ASSET"
	CategoryLiability        Category = "LIABILITY"
	CategoryEquity           Category = "EQUITY"
	CategoryRevenue          Category = "REVENUE"
	CategoryCOGS             Category = "COGS"
	CategoryOperatingExpense Category = "OPERATING_EXPENSE"
	CategoryOtherIncome      Category = "OTHER_INCOME"
	CategoryOtherExpense     Category = "OTHER_EXPENSE"
)

// NaturalBalance is the side that normally increases an account's balance.
type NaturalBalance string

const (
	DebitNormal  NaturalBalance = "DEBIT"
	CreditNormal NaturalBalance = "CREDIT"
)

// classificationRule maps one account-code prefix to a category. Rules are
// ordered most-specific first so overlapping prefixes resolve deterministically
// (5101 must win over 51 for the COGS summary, 61 over 6, etc.).
type classificationRule struct {
	prefix   string
	category Category
}

var classificationRules = []classificationRule{
	{"5101", CategoryCOGS},
	{"41", CategoryRevenue},
	{"51", CategoryCOGS},
	{"61", CategoryOperatingExpense},
	{"71", CategoryOtherIncome},
	{"72", CategoryOtherExpense},
	{"4", CategoryRevenue},
	{"6", CategoryOperatingExpense},
	{"1", CategoryAsset},
	{"2", CategoryLiability},
	{"3", CategoryEquity},
}

// ClassifyAccountCode resolves an account code to its statement category by
// ordered prefix match. Codes matching no prefix belong to no category and are
// excluded from all classified totals.
func ClassifyAccountCode(code string) (Category, bool) {
	for _, rule := range classificationRules {
		if strings.HasPrefix(code, rule.prefix) {
			return rule.category, true
		}
	}
	return "", false
}

// NaturalBalanceOf reports which side increases balances for a category.
// Assets and the expense categories are debit-normal; liabilities, equity and
// the income categories are credit-normal.
func NaturalBalanceOf(category Category) NaturalBalance {
	switch category {
	case CategoryAsset, CategoryCOGS, CategoryOperatingExpense, CategoryOtherExpense:
		return DebitNormal
	default:
		return CreditNormal
	}
}
