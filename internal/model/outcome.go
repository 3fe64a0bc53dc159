package model

// NonContractMessage is returned when the detector rejects a document
const NonContractMessage = "This does not appear to be a contract or agreement. Please upload a contract document for analysis."

// Outcome is the result of running the analysis pipeline on one document.
// It is one of NonContract, Analyzed or Failed.
type Outcome interface {
	Status() Status
	isOutcome()
}

// NonContract means the detector rejected the document and nothing was analyzed
type NonContract struct {
	Detection Detection
}

// Analyzed carries the document and per-clause results
type Analyzed struct {
	Detection Detection
	Document  DocumentReport
	Clauses   []ClauseReport
}

// Failed carries the Unknown sentinel document and the underlying error
type Failed struct {
	Detection Detection
	Document  DocumentReport
	Err       error
}

func (NonContract) Status() Status { return StatusNonContract }
func (Analyzed) Status() Status    { return StatusAnalyzed }
func (Failed) Status() Status      { return StatusFailed }

func (NonContract) isOutcome() {}
func (Analyzed) isOutcome()    {}
func (Failed) isOutcome()      {}

// Apply copies the outcome into a report
func Apply(r *Report, o Outcome) {
	r.Status = o.Status()
	switch v := o.(type) {
	case NonContract:
		r.Detection = v.Detection
		r.Message = NonContractMessage
	case Analyzed:
		doc := v.Document
		r.Detection = v.Detection
		r.Document = &doc
		r.Clauses = v.Clauses
		r.TotalClauses = len(v.Clauses)
	case Failed:
		doc := v.Document
		r.Detection = v.Detection
		r.Document = &doc
		if v.Err != nil {
			r.Message = v.Err.Error()
		}
	}
}
