package messaging

type ChangeTopic string

const (
	DayAdvancedTopic    ChangeTopic = "day_advanced"
	InventoryResetTopic ChangeTopic = "inventory_reset"
)

var AllTopics = []ChangeTopic{DayAdvancedTopic, InventoryResetTopic}
