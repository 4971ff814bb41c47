package engine

// Stage is one discrete phase of the screening dialogue. Transitions only
// move forward, except greeting which loops on itself until a name is
// accepted.
type Stage int

const (
	StageGreeting Stage = iota
	StageCollectingInfo
	StageTechQuestions
	StageConclusion
	StageEnded
)

var stageNames = map[Stage]string{
	StageGreeting:       "greeting",
	StageCollectingInfo: "collecting_info",
	StageTechQuestions:  "tech_questions",
	StageConclusion:     "conclusion",
	StageEnded:          "ended",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
