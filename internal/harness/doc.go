// Package harness runs data-driven match suites and golden trace
// comparisons.
//
// # Suite Format
//
// Suites are defined in YAML files with the following structure:
//
//	suite: suite_name
//	patterns:
//	  - name: optional_a
//	    pattern: "ab?"
//	    mode: exact
//	    cases:
//	      - input: "a"
//	        match: true
//	      - input: "abb"
//	        match: false
//
// The mode field is optional and defaults to exact. Unknown fields are
// rejected at load time so typos fail loudly instead of silently
// skipping cases.
//
// # Execution
//
// RunSuite executes a suite under the testing package, one subtest per
// pattern block and case. Evaluate executes the same cases without a
// testing.T and returns a Report, which is what the command line uses.
//
// # Golden Traces
//
// Snapshot captures one traced run as a TraceSnapshot, and AssertGolden
// compares its JSON rendering against testdata/golden. Regenerate
// fixtures with:
//
//	go test ./... -update
package harness
