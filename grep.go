package preg

// Grep returns the subsequence of subjects that match pattern,
// preserving their relative order. The pattern is compiled once for
// the whole sequence.
func Grep(pattern string, subjects []string) ([]string, error) {
	return grep(pattern, subjects, false)
}

// GrepInverted returns the subsequence of subjects that do not match
// pattern. Together with Grep it partitions the input: every subject
// appears in exactly one of the two results.
func GrepInverted(pattern string, subjects []string) ([]string, error) {
	return grep(pattern, subjects, true)
}

func grep(pattern string, subjects []string, invert bool) ([]string, error) {
	c, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if err := checkSubject(c, s); err != nil {
			return nil, err
		}
		ok, merr := c.re.MatchString(s)
		if merr != nil {
			return nil, matchError(merr)
		}
		if ok != invert {
			out = append(out, s)
		}
	}
	return out, nil
}
