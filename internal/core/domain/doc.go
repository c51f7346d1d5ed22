// Package domain defines the core business entities for localsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has no dependencies on other packages in this repository and
// expresses the ubiquitous language of MDX-to-CMS reconciliation:
// content files, locale matches, sync results and validation
// diagnostics.
package domain
