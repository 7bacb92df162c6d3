// Package pagecomp audits saved web pages (MHTML archives) for the UI
// components they are built from. It extracts the HTML payload of each
// archive, classifies elements into coarse component categories, removes
// duplicates, aggregates counts per display group and can ask an LLM for a
// qualitative pattern analysis.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, rod/).
package pagecomp
