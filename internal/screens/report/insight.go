package report

import "fmt"

// WPMInsight interprets a writing speed for the report.
func WPMInsight(wpm int) string {
	switch {
	case wpm == 0:
		return "Insufficient data collected."
	case wpm < 20:
		return "A moderate typing speed indicates that planning before execution may improve overall output quality."
	case wpm < 35:
		return "Your average typing speed for this attempt was comfortable, allowing more focus on clarity and coherence."
	default:
		return "High execution efficiency suggests you have ample time to review and polish your draft."
	}
}

// IsLowContent reports whether a response is too short for strengths and
// weaknesses to be shown. A non-positive threshold disables the rule.
func IsLowContent(words, threshold int) bool {
	return threshold > 0 && words < threshold
}

// LowContentNotice is shown in place of strengths and weaknesses.
func LowContentNotice(threshold int) string {
	return fmt.Sprintf("Your response is shorter than %d words, which is not enough to evaluate structure, clarity, and depth. "+
		"Please write a little more to receive full feedback.", threshold)
}
