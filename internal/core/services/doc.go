// Package services implements the core reconciliation logic:
// content-tree scanning, frontmatter validation, locale matching,
// payload transformation and the sync orchestrator that drives them
// against the CMS client port.
package services
