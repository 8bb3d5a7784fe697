// pkg/script/steps.go
package script

import "fmt"

// PresenceHelper defines pkg_installed for bash scripts. The argument may
// hold several words; the package counts as installed only when query
// succeeds for every one of them. query refers to the word as $name.
func PresenceHelper(query string) []string {
	return []string{
		"pkg_installed() {",
		"    local name",
		"    for name in $1; do",
		fmt.Sprintf("        %s || return 1", query),
		"    done",
		"    return 0",
		"}",
	}
}

// BestEffort runs cmd and reports the outcome without failing the script
func BestEffort(comment, progress, cmd, done, failed string) Step {
	return Step{
		Comment: comment,
		Lines: []string{
			fmt.Sprintf(`echo "${CYAN}%s${NC}"`, bashText(progress)),
			fmt.Sprintf("if %s; then", cmd),
			fmt.Sprintf(`    echo "${GREEN}%s${NC}"`, bashText(done)),
			"else",
			fmt.Sprintf(`    echo "${YELLOW}%s${NC}"`, bashText(failed)),
			"fi",
			`echo ""`,
		},
	}
}
