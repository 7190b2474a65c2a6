package a2a

// NewTextPart creates a new text part.
func NewTextPart(text string) Part {
	return Part{
		Kind: KindTextPart,
		Text: text,
	}
}

// NewFilePart creates a new file part referenced by URI.
func NewFilePart(uri, name, mimeType string) Part {
	return Part{
		Kind: KindFilePart,
		File: &FilePart{
			URI:      uri,
			Name:     name,
			MimeType: mimeType,
		},
	}
}

// NewFilePartWithBytes creates a new file part carrying base64 bytes.
func NewFilePartWithBytes(bytes, name, mimeType string) Part {
	return Part{
		Kind: KindFilePart,
		File: &FilePart{
			Bytes:    bytes,
			Name:     name,
			MimeType: mimeType,
		},
	}
}

// NewDataPart creates a new structured-data part.
func NewDataPart(data map[string]any) Part {
	return Part{
		Kind: KindDataPart,
		Data: data,
	}
}

// MessageOptions holds optional message fields for NewMessage.
type MessageOptions struct {
	ContextID        string
	TaskID           string
	ReferenceTaskIDs []string
	Metadata         map[string]any
}

// NewMessage creates a new message with optional configuration.
func NewMessage(messageID string, role Role, parts []Part, optFns ...func(*MessageOptions)) Message {
	msg := Message{
		Kind:      KindMessage,
		MessageID: messageID,
		Role:      role,
		Parts:     parts,
	}
	if len(optFns) > 0 {
		opts := &MessageOptions{}
		for _, fn := range optFns {
			fn(opts)
		}
		msg.ContextID = opts.ContextID
		msg.TaskID = opts.TaskID
		msg.ReferenceTaskIDs = opts.ReferenceTaskIDs
		msg.Metadata = opts.Metadata
	}
	return msg
}

// NewTask creates a new task in the given state with empty history.
func NewTask(id, contextID string, state TaskState) *Task {
	return &Task{
		Kind:      KindTask,
		ID:        id,
		ContextID: contextID,
		Status: TaskStatus{
			State: state,
		},
	}
}
