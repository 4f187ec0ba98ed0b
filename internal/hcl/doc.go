// Package hcl provides the HCL implementation of config.Loader. It parses
// settings files, evaluates their expressions against the process
// environment and a small function library, and translates the result
// into the format-agnostic config.Model.
package hcl
