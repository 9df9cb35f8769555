package detect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/natefay000-stack/kuhl-pricing-tracker-sub003/internal/season"
)

// filenamePattern pairs a word-bounded regexp with the capture-group
// positions of the half indicator and the year digits. Word boundaries keep
// the short forms from firing inside unrelated tokens.
type filenamePattern struct {
	re      *regexp.Regexp
	halfIdx int
	yearIdx int
}

// filenamePatterns are tried in order against the upper-cased filename and
// the first match wins. Long, explicit forms come first so that e.g.
// "SPRING 2027" is read as a four-digit year rather than "SPRING 20".
var filenamePatterns = []filenamePattern{
	{re: regexp.MustCompile(`\b(SPRING|FALL)\s+(\d{4})\b`), halfIdx: 1, yearIdx: 2},
	{re: regexp.MustCompile(`\b(SPRING|FALL)\s+(\d{2})\b`), halfIdx: 1, yearIdx: 2},
	{re: regexp.MustCompile(`\b(SP|FA)(\d{2})\b`), halfIdx: 1, yearIdx: 2},
	{re: regexp.MustCompile(`\b(\d{2})(SP|FA)\b`), halfIdx: 2, yearIdx: 1},
	{re: regexp.MustCompile(`\b(S|F)(\d{2})\b`), halfIdx: 1, yearIdx: 2},
}

// SeasonFromFilename extracts a season code embedded in a filename,
// normalized to the canonical "<YY><SP|FA>" form. ok is false when no
// pattern matches; the caller treats that as "season unknown".
func SeasonFromFilename(filename string) (season.Code, bool) {
	name := strings.ToUpper(filename)

	for _, p := range filenamePatterns {
		m := p.re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		yy, err := strconv.Atoi(m[p.yearIdx])
		if err != nil {
			continue
		}
		return season.Code{Year: 2000 + yy%100, Half: halfFromToken(m[p.halfIdx])}, true
	}

	return season.Code{}, false
}

func halfFromToken(token string) season.Half {
	switch token {
	case "SPRING", "SP", "S":
		return season.Spring
	default:
		return season.Fall
	}
}
