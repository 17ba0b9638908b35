package constants

// NSQ topics and channels
const (
	TopicPanicAlert      = "tourist.panic"
	ChannelAlertRecorder = "alert-recorder"
)
