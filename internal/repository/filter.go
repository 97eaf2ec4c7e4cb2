package repository

import (
	"strings"
)

// filterConditions builds the WHERE fragment shared by the trip and stats
// repositories. Empty hour/payment subsets add no condition.
func filterConditions(startDate, endDate string, hours []int, paymentTypes []int64) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if startDate != "" {
		conditions = append(conditions, "pickup_date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		conditions = append(conditions, "pickup_date <= ?")
		args = append(args, endDate)
	}
	if len(hours) > 0 {
		conditions = append(conditions, "pickup_hour IN ("+placeholders(len(hours))+")")
		for _, h := range hours {
			args = append(args, h)
		}
	}
	if len(paymentTypes) > 0 {
		conditions = append(conditions, "payment_type IN ("+placeholders(len(paymentTypes))+")")
		for _, p := range paymentTypes {
			args = append(args, p)
		}
	}

	return conditions, args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}
