package render

import "strings"

// DeriveTitle computes the short human-readable label for a document.
// It is a pure function of kind and data: the persistence layer stores the
// same value the renderer puts in <title>, so the two can never disagree.
func DeriveTitle(kind Kind, data Map) string {
	switch kind {
	case KindInvoice:
		return strings.TrimSpace("Invoice " + data.Str("invoice_number"))
	case KindProposal:
		if t := data.Str("title"); t != "" {
			return t
		}
		return "Proposal"
	case KindReport:
		if t := data.Str("title"); t != "" {
			return t
		}
		return "Report"
	case KindLetter:
		if s := data.Str("subject"); s != "" {
			return s
		}
		return "Letter"
	case KindResume:
		if n := data.Str("name"); n != "" {
			return n + " — Resume"
		}
		return "Resume"
	}
	return "Document"
}
