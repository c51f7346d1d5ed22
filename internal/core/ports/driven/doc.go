// Package driven defines the outbound port interfaces the core
// depends on: the CMS client, the config store and the run-history
// store. Adapters under internal/adapters/driven implement them.
package driven
