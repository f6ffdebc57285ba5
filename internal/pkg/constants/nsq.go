package constants

// NSQ topics
const (
	TopicOTPDispatch = "repair.otp.dispatch"
)

// NSQ channels
const (
	ChannelNotifier = "notifier"
)
