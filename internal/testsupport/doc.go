// Package testsupport builds configurations and config files for tests.
package testsupport
