package components

import "github.com/taurgis/aegis-docsite/internal/domain"

// HomePage is the landing page of the Aegis documentation site.
//
// The page is pure content: a fixed tree assembled from typography
// primitives. Body performs no I/O and holds no state, so repeated renders
// are byte-identical.
type HomePage struct{}

func NewHomePage() *HomePage {
	return &HomePage{}
}

var _ domain.Page = (*HomePage)(nil)

func (p *HomePage) Slug() string { return "home" }

func (p *HomePage) Title() string { return "MCP Aegis" }

func (p *HomePage) Body() *domain.Node {
	return domain.El("article",
		p.hero(),
		p.quickStart(),
		p.features(),
		p.documentation(),
		p.whyAegis(),
		p.productionVerified(),
		p.aiAgents(),
		p.approaches(),
		p.callToAction(),
		p.stats(),
		p.closing(),
	).With("class", "homepage")
}

func (p *HomePage) hero() *domain.Node {
	return Section(
		H1("mcp-aegis", "MCP Aegis"),
		PageSubtitle("Declarative testing for Model Context Protocol servers. "+
			"Write your expectations in YAML or JavaScript, point Aegis at your server, "+
			"and ship tools that agents can trust."),
		BadgeRow(
			Badge("npm v{{version}}"),
			Badge("MIT License"),
			Badge("Node.js 18+"),
			Badge("CI Passing"),
		),
	)
}

func (p *HomePage) quickStart() *domain.Node {
	return Section(
		H2("quick-start", "Quick Start"),
		Para(
			T("Three commands take you from an empty project to a running test suite. "),
			T("The "),
			InlineCode("init"),
			T(" step writes a config file and a first test you can run immediately."),
		),
		CodeBlock("bash", ShellQuickStartSample),
		H3("yaml-tests", "Declare it in YAML"),
		Para(
			T("A test is a JSON-RPC request paired with the response you expect. "),
			T("Pattern tokens like "),
			InlineCode("match:type:array"),
			T(" assert shape instead of exact values, so tests stay green while your data changes."),
		),
		CodeBlock("yaml", YAMLToolsListSample),
		H3("js-tests", "Or script it in JavaScript"),
		Para(
			T("The programmatic API plugs into "),
			InlineCode("node:test"),
			T(" lifecycle hooks. Connect once, exercise your server, assert with the tools you already know."),
		),
		CodeBlock("javascript", JSLifecycleSample),
	)
}

func (p *HomePage) features() *domain.Node {
	return Section(
		H2("features", "Features"),
		List(
			Item(Strong("Declarative YAML tests"), T(" — describe request and expected response, no harness code.")),
			Item(Strong("29+ pattern matchers"), T(" — types, regex, ranges, partial objects, array elements.")),
			Item(Strong("Programmatic API"), T(" — the same engine, scriptable from any JavaScript test runner.")),
			Item(Strong("Full JSON-RPC visibility"), T(" — every request and response logged with "), InlineCode("--debug"), T(".")),
			Item(Strong("Rich failure diffs"), T(" — see exactly which field broke the expectation and why.")),
			Item(Strong("stdio transport support"), T(" — test servers the way MCP clients actually spawn them.")),
		),
	)
}

func (p *HomePage) documentation() *domain.Node {
	return Section(
		H2("documentation", "Documentation"),
		Grid("4",
			Card("Installation", Para(LinkTo("/installation", "Requirements and setup"))),
			Card("Quick Start", Para(LinkTo("/quick-start", "First test in five minutes"))),
			Card("Pattern Matching", Para(LinkTo("/pattern-matching", "All matcher tokens, with examples"))),
			Card("CLI Options", Para(LinkTo("/cli-options", "Flags, globs, and exit codes"))),
			Card("Programmatic Testing", Para(LinkTo("/programmatic-testing", "The JavaScript client API"))),
			Card("Examples", Para(LinkTo("/examples", "Real suites for real servers"))),
			Card("Error Reporting", Para(LinkTo("/error-reporting", "Reading failure output"))),
			Card("AI Agent Testing", Para(LinkTo("/ai-agents", "Validating agent-facing tools"))),
		),
	)
}

func (p *HomePage) whyAegis() *domain.Node {
	return Section(
		H2("why-aegis", "Why Choose MCP Aegis"),
		List(
			Item(T("Purpose-built for MCP — it speaks JSON-RPC and the protocol handshake natively.")),
			Item(T("Zero harness code for the common cases; YAML files are the whole suite.")),
			Item(T("One tool for both styles: declarative suites and scripted scenarios share semantics.")),
			Item(T("Readable failures designed for humans first, CI logs second.")),
			Item(T("No lock-in: tests are plain files you can diff, review, and generate.")),
		),
	)
}

func (p *HomePage) productionVerified() *domain.Node {
	return Section(
		H2("production-verified", "Verified Against Production Servers"),
		Para(T("The release suite runs against widely deployed MCP servers before every publish.")),
		Grid("3",
			Card("Filesystem server",
				Para(T("Tool listing, reads, writes, and path-error surfaces covered end to end."))),
			Card("Git server",
				Para(T("Repository inspection tools validated with shape and regex patterns."))),
			Card("Database server",
				Para(T("Query tools checked for schema-stable responses under changing data."))),
		),
	)
}

func (p *HomePage) aiAgents() *domain.Node {
	return Section(
		H2("ai-agent-support", "Built for AI Agents"),
		Callout("Agents write Aegis tests too.",
			Para(
				T("The YAML format is deliberately small and regular, so coding agents can generate "),
				T("and repair suites without guidance. See "),
				LinkTo("/ai-agents", "AI Agent Testing"),
				T(" for prompts and guardrails."),
			),
		),
	)
}

func (p *HomePage) approaches() *domain.Node {
	return Section(
		H2("testing-approaches", "Two Testing Approaches"),
		Columns(
			Card("Declarative (YAML)",
				List(
					Item(T("Best for request/response contracts")),
					Item(T("Reviewable by non-programmers")),
					Item(T("Pattern matchers keep tests data-independent")),
					Item(T("Run with the CLI, filter with globs")),
				),
			),
			Card("Programmatic (JavaScript)",
				List(
					Item(T("Best for multi-step stateful scenarios")),
					Item(T("Full access to assertions and fixtures")),
					Item(T("Integrates with "), InlineCode("node:test"), T(" and CI runners")),
					Item(T("Same engine, same semantics as YAML")),
				),
			),
		),
	)
}

func (p *HomePage) callToAction() *domain.Node {
	return Section(
		H2("get-started", "Get Started"),
		Callout("Ship trustworthy MCP tools today.",
			Para(
				T("Install Aegis, run "),
				InlineCode("npx aegis init"),
				T(", and your first suite is minutes away. Jump back to the "),
				LinkTo("#quick-start", "quick start"),
				T(" or head straight to the "),
				LinkTo("/installation", "installation guide"),
				T("."),
			),
		),
	)
}

func (p *HomePage) stats() *domain.Node {
	return Section(
		H2("by-the-numbers", "By the Numbers"),
		Grid("4",
			Stat("29+", "pattern matchers"),
			Stat("130+", "tests in the release suite"),
			Stat("2", "testing styles, one engine"),
			Stat("0", "harness code required"),
		),
	)
}

func (p *HomePage) closing() *domain.Node {
	return Section(
		Callout("MCP Aegis is open source under the MIT license.",
			Para(
				T("Star the repo, file issues, or contribute matchers at "),
				LinkTo("https://github.com/taurgis/mcp-aegis", "github.com/taurgis/mcp-aegis"),
				T("."),
			),
		),
	).With("class", "closing")
}
