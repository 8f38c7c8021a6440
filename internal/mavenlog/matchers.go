package mavenlog

import "regexp"

// A matcher recognizes one build-tool log format. Matchers are independent;
// the registry order only decides ordering when a single line satisfies more
// than one pattern.
type matcher struct {
	title string
	re    *regexp.Regexp
	build func(title string, groups []string) Diagnostic
}

func (m matcher) match(line string) (Diagnostic, bool) {
	groups := m.re.FindStringSubmatch(line)
	if groups == nil {
		return Diagnostic{}, false
	}
	return m.build(m.title, groups), true
}

// matchers is the registry of supported formats.
var matchers = []matcher{
	// maven-compiler-plugin:  [ERROR] /abs/path/Foo.java:[10,3] cannot find symbol
	// The column group is optional; some plugins emit [line] only.
	{
		title: "maven",
		re:    regexp.MustCompile(`^\[([A-Z]+)\] (/[^\[\]]+?):\[(\d+)(?:,(\d+))?\] (.+)$`),
		build: func(title string, g []string) Diagnostic {
			return Diagnostic{
				Severity: mapSeverity(g[1]),
				Path:     g[2],
				Line:     atoi(g[3]),
				Column:   atoi(g[4]),
				Title:    title,
				Message:  g[5],
			}
		},
	},
	// plain javac:  src/main/java/Foo.java:10: error: cannot find symbol
	{
		title: "javac",
		re:    regexp.MustCompile(`^([^\s:\[][^\s:]*\.java):(\d+): (?:(error|warning|Note): )?(.+)$`),
		build: func(title string, g []string) Diagnostic {
			sev := SeverityFailure
			if g[3] != "" {
				sev = mapSeverity(g[3])
			}
			return Diagnostic{
				Severity: sev,
				Path:     g[1],
				Line:     atoi(g[2]),
				Title:    title,
				Message:  g[4],
			}
		},
	},
	// maven-checkstyle-plugin:  [WARN] /abs/path/Foo.java:12:5: Missing a Javadoc comment. [JavadocMethod]
	{
		title: "checkstyle",
		re:    regexp.MustCompile(`^\[([A-Z]+)\] (/[^\s:]+\.java):(\d+)(?::(\d+))?: (.+)$`),
		build: func(title string, g []string) Diagnostic {
			return Diagnostic{
				Severity: mapSeverity(g[1]),
				Path:     g[2],
				Line:     atoi(g[3]),
				Column:   atoi(g[4]),
				Title:    title,
				Message:  g[5],
			}
		},
	},
}
