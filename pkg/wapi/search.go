package wapi

import "net/url"

// Modifier is a search modifier suffix appended to a filter field name,
// altering the comparison semantics of that field. The token set is fixed
// by the appliance; see the WAPI documentation on search modifiers.
type Modifier string

const (
	// ModifierNone compares for case sensitive equality.
	ModifierNone Modifier = ""
	// ModifierCaseInsensitive compares for case insensitive equality.
	ModifierCaseInsensitive Modifier = ":"
	// ModifierRegex matches the value as a regular expression.
	ModifierRegex Modifier = "~"
	// ModifierNegative negates the comparison.
	ModifierNegative Modifier = "!"
	// ModifierLessThan compares for less than or equal.
	ModifierLessThan Modifier = "<"
	// ModifierGreaterThan compares for greater than or equal.
	ModifierGreaterThan Modifier = ">"
)

// newFilter returns a search filter constrained to the client DNS view.
func (c *Client) newFilter() url.Values {
	filter := url.Values{}
	addCriterion(filter, "view", ModifierNone, c.dnsView)
	return filter
}

// addCriterion adds field=value to the filter with the modifier suffixed
// to the field name. An empty value means the criterion is absent and
// nothing is added, so optional criteria never reach the wire as empty
// placeholders.
func addCriterion(filter url.Values, field string, modifier Modifier, value string) {
	if value == "" {
		return
	}
	filter.Set(field+string(modifier), value)
}
