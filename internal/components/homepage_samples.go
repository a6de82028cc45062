package components

import "github.com/taurgis/aegis-docsite/internal/domain"

// The quick-start listings below are the product's documented usage examples.
// They render verbatim on the homepage and are pinned by the checks in
// HomeSamples, so the published docs cannot drift from the API they promise.

const ShellQuickStartSample = `# Install alongside your MCP project
npm install --save-dev mcp-aegis

# Scaffold aegis.config.json and a starter test
npx aegis init

# Run the suite (add --debug to trace JSON-RPC traffic)
npx aegis "tests/**/*.test.mcp.yml" --verbose`

const YAMLToolsListSample = `description: "Tool discovery"
tests:
  - it: "should list available tools"
    request:
      jsonrpc: "2.0"
      id: "tools-1"
      method: "tools/list"
      params: {}
    expect:
      response:
        jsonrpc: "2.0"
        id: "tools-1"
        result:
          tools: "match:type:array"`

const JSLifecycleSample = `import { test, before, after } from 'node:test';
import { strict as assert } from 'node:assert';
import { connect } from 'mcp-aegis';

let client;

before(async () => {
  client = await connect('./aegis.config.json');
});

after(async () => {
  await client.disconnect();
});

test('should list available tools', async () => {
  const tools = await client.listTools();
  assert.ok(Array.isArray(tools), 'tools should be an array');
});`

// HomeSamples returns the homepage code samples with their structural checks.
func HomeSamples() []domain.CodeSample {
	return []domain.CodeSample{
		{
			Name:     "quickstart.shell",
			Language: domain.LangBash,
			Source:   ShellQuickStartSample,
			Checks: []domain.SampleCheck{
				{Name: "install command", Contains: strptr("npm install --save-dev mcp-aegis")},
				{Name: "init command", Contains: strptr("npx aegis init")},
				{Name: "verbose flag", Contains: strptr("--verbose")},
				{Name: "debug flag", Contains: strptr("--debug")},
			},
		},
		{
			Name:     "quickstart.yaml",
			Language: domain.LangYAML,
			Source:   YAMLToolsListSample,
			Checks: []domain.SampleCheck{
				{Name: "has description", Path: "$.description", Exists: true},
				{Name: "jsonrpc version", Path: "$.tests[0].request.jsonrpc", Equals: strptr("2.0")},
				{Name: "tools/list request", Path: "$.tests[0].request.method", Equals: strptr("tools/list")},
				{Name: "request and response ids match", Path: "$.tests[0].expect.response.id", Equals: strptr("tools-1")},
				{Name: "array pattern assertion", Path: "$.tests[0].expect.response.result.tools", Equals: strptr("match:type:array")},
			},
		},
		{
			Name:     "quickstart.javascript",
			Language: domain.LangJavaScript,
			Source:   JSLifecycleSample,
			Checks: []domain.SampleCheck{
				{Name: "setup hook", Contains: strptr("before(async () => {")},
				{Name: "teardown hook", Contains: strptr("after(async () => {")},
				{Name: "connects a client", Contains: strptr("connect('./aegis.config.json')")},
				{Name: "lists tools", Contains: strptr("client.listTools()")},
				{Name: "asserts array result", Contains: strptr("Array.isArray(tools)")},
			},
		},
	}
}

func strptr(s string) *string { return &s }
