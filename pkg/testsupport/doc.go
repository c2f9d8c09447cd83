// Package testsupport holds golden-file helpers shared by package tests. Run
// the tests with UPDATE_GOLDENS=1 to rewrite the goldens.
package testsupport
