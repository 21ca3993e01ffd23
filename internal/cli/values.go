package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// parseTags parses Key=Value pairs. A missing "=" gives an empty value.
func parseTags(values []string) ([]types.Tag, error) {
	tags := make([]types.Tag, 0, len(values))
	for _, v := range values {
		key, value, _ := strings.Cut(v, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid tag %q: expected Key=Value", v)
		}
		tags = append(tags, types.Tag{Key: aws.String(key), Value: aws.String(value)})
	}
	return tags, nil
}

// parseFilters parses Name=v1,v2 expressions.
func parseFilters(values []string) ([]types.Filter, error) {
	filters := make([]types.Filter, 0, len(values))
	for _, v := range values {
		name, list, ok := strings.Cut(v, "=")
		if !ok || name == "" || list == "" {
			return nil, fmt.Errorf("invalid filter %q: expected Name=value[,value...]", v)
		}
		filters = append(filters, types.Filter{
			Name:   aws.String(name),
			Values: strings.Split(list, ","),
		})
	}
	return filters, nil
}

// parseParameters parses Name=Value[:apply-method] settings for parameter
// groups. The apply method is immediate or pending-reboot.
func parseParameters(values []string) ([]types.Parameter, error) {
	params := make([]types.Parameter, 0, len(values))
	for _, v := range values {
		name, rest, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected Name=Value[:apply-method]", v)
		}

		p := types.Parameter{ParameterName: aws.String(name)}
		value := rest
		if i := strings.LastIndex(rest, ":"); i >= 0 {
			if method, known := applyMethod(rest[i+1:]); known {
				value = rest[:i]
				p.ApplyMethod = method
			}
		}
		p.ParameterValue = aws.String(value)
		params = append(params, p)
	}
	return params, nil
}

func applyMethod(s string) (types.ApplyMethod, bool) {
	for _, m := range types.ApplyMethod("").Values() {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return "", false
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected RFC3339, e.g. 2024-01-02T15:04:05Z", value)
	}
	return t, nil
}
