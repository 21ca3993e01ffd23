package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var events = []adapter.Descriptor{
	CreateEventSubscription,
	ModifyEventSubscription,
	AddSourceIdentifierToSubscription,
	RemoveSourceIdentifierFromSubscription,
	DeleteEventSubscription,
	DescribeEventSubscriptions,
	DescribeEvents,
}

var CreateEventSubscription = &adapter.Operation[rds.CreateEventSubscriptionInput, rds.CreateEventSubscriptionOutput]{
	Info: adapter.Info{
		Name:        "CreateEventSubscription",
		Description: "Creates an RDS event notification subscription",
		Target:      "SubscriptionName",
		Select:      "EventSubscription",
		Params: params(
			required("SubscriptionName"),
			describe(required("SnsTopicArn"), "SNS topic receiving the notifications"),
			describe(optional("SourceType"), "db-instance, db-cluster, db-snapshot and so on"),
			typed("EventCategories", adapter.KindStrings),
			typed("SourceIds", adapter.KindStrings),
			typed("Enabled", adapter.KindBool),
			tags(),
		),
	},
	Call: rdsapi.API.CreateEventSubscription,
}

var ModifyEventSubscription = &adapter.Operation[rds.ModifyEventSubscriptionInput, rds.ModifyEventSubscriptionOutput]{
	Info: adapter.Info{
		Name:        "ModifyEventSubscription",
		Description: "Modifies an event notification subscription",
		Target:      "SubscriptionName",
		Select:      "EventSubscription",
		Params: params(
			required("SubscriptionName"),
			optional("SnsTopicArn"),
			optional("SourceType"),
			typed("EventCategories", adapter.KindStrings),
			typed("Enabled", adapter.KindBool),
		),
	},
	Call: rdsapi.API.ModifyEventSubscription,
}

var AddSourceIdentifierToSubscription = &adapter.Operation[rds.AddSourceIdentifierToSubscriptionInput, rds.AddSourceIdentifierToSubscriptionOutput]{
	Info: adapter.Info{
		Name:        "AddSourceIdentifierToSubscription",
		Description: "Adds a source to an event notification subscription",
		Target:      "SubscriptionName",
		Select:      "EventSubscription",
		Params: params(
			required("SubscriptionName"),
			required("SourceIdentifier"),
		),
	},
	Call: rdsapi.API.AddSourceIdentifierToSubscription,
}

var RemoveSourceIdentifierFromSubscription = &adapter.Operation[rds.RemoveSourceIdentifierFromSubscriptionInput, rds.RemoveSourceIdentifierFromSubscriptionOutput]{
	Info: adapter.Info{
		Name:        "RemoveSourceIdentifierFromSubscription",
		Description: "Removes a source from an event notification subscription",
		Destructive: true,
		Target:      "SubscriptionName",
		Select:      "EventSubscription",
		Params: params(
			required("SubscriptionName"),
			required("SourceIdentifier"),
		),
	},
	Call: rdsapi.API.RemoveSourceIdentifierFromSubscription,
}

var DeleteEventSubscription = &adapter.Operation[rds.DeleteEventSubscriptionInput, rds.DeleteEventSubscriptionOutput]{
	Info: adapter.Info{
		Name:        "DeleteEventSubscription",
		Description: "Deletes an event notification subscription",
		Destructive: true,
		Target:      "SubscriptionName",
		Select:      "EventSubscription",
		Params:      params(required("SubscriptionName")),
	},
	Call: rdsapi.API.DeleteEventSubscription,
}

var DescribeEventSubscriptions = &adapter.Operation[rds.DescribeEventSubscriptionsInput, rds.DescribeEventSubscriptionsOutput]{
	Info: adapter.Info{
		Name:        "DescribeEventSubscriptions",
		Description: "Lists event notification subscriptions",
		Select:      "EventSubscriptionsList",
		Params:      append(params(optional("SubscriptionName")), listParams()...),
		Paging:      paged(),
	},
	Call: rdsapi.API.DescribeEventSubscriptions,
}

var DescribeEvents = &adapter.Operation[rds.DescribeEventsInput, rds.DescribeEventsOutput]{
	Info: adapter.Info{
		Name:        "DescribeEvents",
		Description: "Lists events of the last 14 days",
		Select:      "Events",
		Params: append(params(
			optional("SourceIdentifier"),
			optional("SourceType"),
			describe(typed("StartTime", adapter.KindTime), "start of the window, RFC 3339"),
			describe(typed("EndTime", adapter.KindTime), "end of the window, RFC 3339"),
			describe(typed("Duration", adapter.KindInt), "minutes of events to return"),
			typed("EventCategories", adapter.KindStrings),
		), listParams()...),
		Paging: paged(),
	},
	Call: rdsapi.API.DescribeEvents,
}
