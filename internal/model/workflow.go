package model

// WorkflowNode is one of the boxes the workflow visualizer highlights.
type WorkflowNode string

const (
	WorkflowNodeMessenger WorkflowNode = "messenger"
	WorkflowNodeScanner   WorkflowNode = "scanner"
	WorkflowNodeReport    WorkflowNode = "report"
)

// WorkflowNodes returns the visualizer nodes in display order.
func WorkflowNodes() []WorkflowNode {
	return []WorkflowNode{WorkflowNodeMessenger, WorkflowNodeScanner, WorkflowNodeReport}
}

// WorkflowStage is a step of the narrative loop.
type WorkflowStage struct {
	Caption    string
	ActiveNode WorkflowNode
}

// DefaultWorkflowStages returns the four narrative stages of the bot.
func DefaultWorkflowStages() []WorkflowStage {
	return []WorkflowStage{
		{Caption: "You send the address to the chat", ActiveNode: WorkflowNodeMessenger},
		{Caption: "The bot analyses the blockchain", ActiveNode: WorkflowNodeScanner},
		{Caption: "Checking the databases", ActiveNode: WorkflowNodeReport},
		{Caption: "Instant result", ActiveNode: WorkflowNodeReport},
	}
}

// WorkflowState is the observable state of a workflow cycler.
type WorkflowState struct {
	// Stage is the index in Stages, always in [0, len(Stages)).
	Stage  int
	Stages []WorkflowStage
}

// Current returns the current stage.
func (w WorkflowState) Current() WorkflowStage {
	if w.Stage < 0 || w.Stage >= len(w.Stages) {
		return WorkflowStage{}
	}
	return w.Stages[w.Stage]
}
