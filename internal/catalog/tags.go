package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var tagging = []adapter.Descriptor{
	AddTagsToResource,
	RemoveTagsFromResource,
	ListTagsForResource,
}

var AddTagsToResource = &adapter.Operation[rds.AddTagsToResourceInput, rds.AddTagsToResourceOutput]{
	Info: adapter.Info{
		Name:        "AddTagsToResource",
		Description: "Adds tags to an RDS resource",
		Target:      "ResourceName",
		Select:      adapter.SelectNone,
		PassThru:    "ResourceName",
		Params: params(
			describe(required("ResourceName"), "ARN of the resource"),
			mandatory(tags()),
		),
	},
	Call: rdsapi.API.AddTagsToResource,
}

var RemoveTagsFromResource = &adapter.Operation[rds.RemoveTagsFromResourceInput, rds.RemoveTagsFromResourceOutput]{
	Info: adapter.Info{
		Name:        "RemoveTagsFromResource",
		Description: "Removes tags from an RDS resource",
		Destructive: true,
		Target:      "ResourceName",
		Select:      adapter.SelectNone,
		PassThru:    "ResourceName",
		Params: params(
			describe(required("ResourceName"), "ARN of the resource"),
			describe(mandatory(mapped("TagKey", "TagKeys", adapter.KindStrings)), "keys of the tags to remove"),
		),
	},
	Call: rdsapi.API.RemoveTagsFromResource,
}

var ListTagsForResource = &adapter.Operation[rds.ListTagsForResourceInput, rds.ListTagsForResourceOutput]{
	Info: adapter.Info{
		Name:        "ListTagsForResource",
		Description: "Lists the tags of an RDS resource",
		Select:      "TagList",
		Params: params(
			describe(required("ResourceName"), "ARN of the resource"),
			filters(),
		),
	},
	Call: rdsapi.API.ListTagsForResource,
}
