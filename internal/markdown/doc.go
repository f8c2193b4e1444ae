// Package markdown imports frontmatter-annotated Markdown files as localized
// records. The default-locale file establishes the record identity; sibling
// files for other locales become saved translations of the same record.
package markdown
