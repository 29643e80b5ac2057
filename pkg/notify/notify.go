package notify

import (
	"fmt"
	"os"
	"os/exec"

	"niri-app-hotkey/pkg/logger"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

const title = "niri-app-hotkey"

// NotifyService surfaces messages from hotkey invocations, which usually
// have no terminal attached.
type NotifyService struct {
	log           *logger.Logger
	notifyCommand string
}

// NewNotifyService creates a new notification service. notifyCommand is the
// user's configured command, tried before the built-in tools; empty means
// auto-detect.
func NewNotifyService(notifyCommand string, log *logger.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(message string, nType NotificationType) error {
	// If running in a terminal, print directly
	if isRunningInTerminal() {
		n.printToTerminal(message, nType)
		return nil
	}

	// Try configured notification command first if available
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	// Fall back to common desktop notification tools
	if err := n.trySystemNotification(message, nType); err == nil {
		return nil
	}

	return fmt.Errorf("no notification mechanism available")
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	typeStr := "ERROR"
	if nType == Info {
		typeStr = "INFO"
	}

	cmd := exec.Command("sh", "-c", fmt.Sprintf("%s '%s' '%s'", n.notifyCommand, typeStr, message))
	return cmd.Run()
}

func (n *NotifyService) trySystemNotification(message string, nType NotificationType) error {
	urgency := "normal"
	messageTitle := title
	if nType == Error {
		urgency = "critical"
		messageTitle += " Error"
	}

	for _, tool := range []string{"notify-send", "dunstify"} {
		path, err := exec.LookPath(tool)
		if err != nil {
			continue
		}
		if err := exec.Command(path, "-u", urgency, messageTitle, message).Run(); err == nil {
			n.log.Debug("Notification sent", "tool", tool, "type", nType)
			return nil
		}
	}

	return fmt.Errorf("no notification tool found")
}

func (n *NotifyService) printToTerminal(message string, nType NotificationType) {
	colorCode := "\x1b[32m" // Green for info
	prefix := fmt.Sprintf("%s - Info", title)
	if nType == Error {
		colorCode = "\x1b[31m" // Red for error
		prefix = fmt.Sprintf("%s - Error", title)
	}

	fmt.Fprintf(os.Stderr, "%s%s: %s\x1b[0m\n", colorCode, prefix, message)
}

func isRunningInTerminal() bool {
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
