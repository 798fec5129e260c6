package formatters

// YesNo renders a boolean the way an HTML view expects it.
func YesNo(v bool) string {
	if v {
		return `Yes`
	}
	return `No`
}
