package jobs

import (
	"regexp"
	"strings"
)

// A Pattern is one dictionary entry: a sequence of literal segments and
// optional-separator segments. An optional separator matches any single
// character or nothing ("problem solving", "problem-solving",
// "problemsolving") and renders as "-" in the normalized display form.
//
// Source syntax: `\X` is a literal X, `.?` is an optional separator,
// everything else is literal. Matching is case-insensitive on ASCII word
// boundaries, so entries like "c#" and ".net" only match when flanked by
// word characters the way the boundary rules allow.
type Pattern struct {
	raw     string
	display string
	re      *regexp.Regexp
}

// Display returns the normalized keyword text reported on a match.
func (p Pattern) Display() string { return p.display }

// Match reports whether the pattern occurs in text on word boundaries.
// Callers pass lowercased text; the compiled regex is case-insensitive
// anyway so pre-lowering only matters for the Danish letters æ/ø/å.
func (p Pattern) Match(text string) bool { return p.re.MatchString(text) }

// mustPattern parses the source syntax and compiles the matcher.
// Dictionary entries are static, so a malformed entry is a programming
// error and panics at init.
func mustPattern(raw string) Pattern {
	var reb, disp strings.Builder
	reb.WriteString(`(?i)\b`)

	rs := []rune(raw)
	for i := 0; i < len(rs); i++ {
		switch {
		case rs[i] == '\\' && i+1 < len(rs):
			// escaped literal
			i++
			reb.WriteString(regexp.QuoteMeta(string(rs[i])))
			disp.WriteRune(rs[i])
		case rs[i] == '.' && i+1 < len(rs) && rs[i+1] == '?':
			// optional separator
			i++
			reb.WriteString(`.?`)
			disp.WriteByte('-')
		default:
			reb.WriteString(regexp.QuoteMeta(string(rs[i])))
			disp.WriteRune(rs[i])
		}
	}
	reb.WriteString(`\b`)

	return Pattern{raw: raw, display: disp.String(), re: regexp.MustCompile(reb.String())}
}

func mustPatterns(raws []string) []Pattern {
	out := make([]Pattern, len(raws))
	for i, r := range raws {
		out[i] = mustPattern(r)
	}
	return out
}

// technicalPatterns is the full technical-skill dictionary, in scan order.
// Danish and English entries coexist; insertion order is part of the
// extractor contract (first match position decides output order).
var technicalPatterns = mustPatterns([]string{
	// Languages
	`javascript`, `typescript`, `python`, `java`, `c#`, `c\+\+`, `go`, `rust`, `php`, `kotlin`, `swift`, `powershell`,

	// Frontend frameworks
	`react`, `angular`, `vue`, `vue\.js`, `next\.js`, `nuxt`, `nuxt\.js`, `svelte`,
	`html`, `css`, `tailwind`, `bootstrap`, `sass`, `scss`,
	`reactjs`, `angularjs`,

	// Design tools
	`figma`, `sketch`, `adobe xd`, `invision`, `zeplin`, `framer`,

	// UX/UI
	`ux`, `ui`, `ux/ui`, `user experience`, `user interface`, `wireframe`, `wireframes`, `prototype`, `prototyping`,
	`interaction design`, `visual design`, `design system`, `design systems`, `design guideline`, `design guidelines`,
	`user research`, `usability testing`, `user testing`, `a/b testing`, `a/b.?test`, `user flow`, `user flows`,
	`user journey`, `customer journey`, `information architecture`, `responsive design`, `mobile.?first`,
	`accessibility`, `wcag`, `flows`, `interaktioner`, `interactions`, `design trends`, `best practices`,
	`brand.?oplevelse`, `brugeroplevelse`, `brugercentreret`, `pixel.?perfect`, `high.?fidelity`,
	`low.?fidelity`, `mockup`, `mockups`, `design.?thinking`, `user.?centric`, `customer.?centric`,

	// Backend frameworks
	`node\.js`, `express`, `django`, `flask`, `spring`, `\.net`, `\.net core`, `net core`, `asp\.net`, `jakarta ee`, `j2ee`,

	// Databases and search
	`sql`, `t-sql`, `mongodb`, `postgresql`, `mysql`, `redis`, `elasticsearch`, `solr`, `opensearch`,
	`microsoft sql server`, `mssql`, `sql server`, `oracle`,
	`database architecture`, `database modeling`, `data modeling`, `data quality`,

	// Testing
	`cypress`, `unit test`, `integration test`, `system test`, `quality assurance`, `qa`,

	// DevOps and infrastructure
	`docker`, `kubernetes`, `k8s`, `linux`, `windows`, `container`, `containerization`,
	`infrastructure as code`, `iac`, `terraform`, `ansible`,
	`ci/cd`, `gitops`, `pipelines`, `github actions`, `gitlab ci`,
	`monitoring`, `high availability`, `scalability`, `devops`,

	// Cloud and tools
	`aws`, `s3`, `cloudfront`, `azure`, `gcp`, `cloud`, `saas`, `paas`,
	`git`, `github`, `gitlab`, `bitbucket`, `jenkins`, `azure devops`, `octopus`,
	`over.?the.?air`, `ota`,

	// Methodologies
	`agile`, `scrum`, `kanban`, `lean`, `design thinking`, `user.?centered`, `user.?centric`,
	`test.?driven`, `tdd`, `continuous integration`, `continuous deployment`,
	`automated tests`, `automation`, `prompting`, `full.?stack`, `full stack`,

	// APIs and architecture
	`rest api`, `graphql`, `microservices`, `api`, `restful`, `api integration`,
	`distribuerede systemer`, `distributed systems`, `enterprise architecture`,
	`edi`, `peppol`, `nemhandel`,
	`togaf`, `migration`, `rehost`, `replatform`, `refactor`,

	// Security and data
	`cybersecurity`, `cyber security`, `sikkerhed`, `security`, `security-by-design`, `adgangsstyring`, `authentication`,
	`machine learning`, `ml`, `ai`, `sprogmodeller`,
	`etl`, `data integration`, `data.?centric`,

	// CMS and platforms
	`open source`, `wordpress`, `contentful`, `sanity`, `strapi`, `headless cms`,
	`umbraco`, `sitecore`, `salesforce`, `sharepoint`, `dynamics crm`, `business central`, `erp`,

	// Other
	`mainframe`, `batch jobs`, `business process automation`, `web components`,
})

// softPatterns covers soft skills in English and Danish.
var softPatterns = mustPatterns([]string{
	`communication`, `teamwork`, `problem.?solving`, `leadership`, `analytical`,
	`creative`, `adaptable`, `detail.?oriented`, `self.?motivated`, `collaborative`,
	`time.?management`, `critical.?thinking`, `independent`, `proactive`,
	`engagement`, `dedication`, `drive`, `structured`, `pixel.?perfect`,
	`empathy`, `curiosity`, `stakeholder management`, `feedback`, `coaching`,
	`quality.?conscious`, `pride`, `humor`, `self.?directed`,
	// Danish
	`metodisk`, `detailorienteret`, `nysgerrig`, `initiativrig`, `analytisk`,
	`selvstændig`, `samarbejde`, `faglig sparring`, `videndeling`,
	`fleksibel`, `uformel`, `proaktiv`, `ambitiøs`, `kvalitetsbevidst`,
	`ansvarsfuld`, `selvkørende`, `struktureret`, `logisk`,
})

// quickPatterns is the reduced technical-only dictionary used for bulk
// scoring of feed results, where running the full extractor per job would
// be wasteful.
var quickPatterns = mustPatterns([]string{
	// Languages
	`javascript`, `typescript`, `python`, `java`, `c#`, `c\+\+`, `go`, `rust`, `php`, `swift`, `kotlin`, `scala`, `ruby`,
	// Frontend
	`react`, `angular`, `vue`, `next\.js`, `nuxt`, `svelte`, `html`, `css`, `sass`, `less`, `tailwind`, `bootstrap`,
	// Backend
	`node\.js`, `\.net`, `asp\.net`, `express`, `nestjs`, `django`, `flask`, `spring`, `laravel`,
	// Databases
	`sql`, `mysql`, `mongodb`, `postgresql`, `redis`, `elasticsearch`, `dynamodb`, `cassandra`, `oracle`,
	// Cloud and DevOps
	`docker`, `kubernetes`, `azure`, `aws`, `gcp`, `terraform`, `ansible`, `jenkins`, `gitlab`, `github actions`,
	// Tools and methodologies
	`git`, `scrum`, `agile`, `jira`, `confluence`, `ci\/cd`, `rest`, `graphql`, `api`, `microservices`,
	// Testing
	`jest`, `cypress`, `selenium`, `unit testing`, `integration testing`, `tdd`,
})
