package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var subnetGroups = []adapter.Descriptor{
	CreateDBSubnetGroup,
	ModifyDBSubnetGroup,
	DeleteDBSubnetGroup,
	DescribeDBSubnetGroups,
}

var CreateDBSubnetGroup = &adapter.Operation[rds.CreateDBSubnetGroupInput, rds.CreateDBSubnetGroupOutput]{
	Info: adapter.Info{
		Name:        "CreateDBSubnetGroup",
		Description: "Creates a DB subnet group",
		Target:      "DBSubnetGroupName",
		Select:      "DBSubnetGroup",
		Params: params(
			required("DBSubnetGroupName"),
			required("DBSubnetGroupDescription"),
			describe(typed("SubnetIds", adapter.KindStrings), "EC2 subnet ids, at least two availability zones"),
			tags(),
		),
	},
	Call: rdsapi.API.CreateDBSubnetGroup,
}

var ModifyDBSubnetGroup = &adapter.Operation[rds.ModifyDBSubnetGroupInput, rds.ModifyDBSubnetGroupOutput]{
	Info: adapter.Info{
		Name:        "ModifyDBSubnetGroup",
		Description: "Changes the subnets of a DB subnet group",
		Target:      "DBSubnetGroupName",
		Select:      "DBSubnetGroup",
		Params: params(
			required("DBSubnetGroupName"),
			optional("DBSubnetGroupDescription"),
			typed("SubnetIds", adapter.KindStrings),
		),
	},
	Call: rdsapi.API.ModifyDBSubnetGroup,
}

var DeleteDBSubnetGroup = &adapter.Operation[rds.DeleteDBSubnetGroupInput, rds.DeleteDBSubnetGroupOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBSubnetGroup",
		Description: "Deletes a DB subnet group",
		Destructive: true,
		Target:      "DBSubnetGroupName",
		Select:      adapter.SelectNone,
		PassThru:    "DBSubnetGroupName",
		Params:      params(required("DBSubnetGroupName")),
	},
	Call: rdsapi.API.DeleteDBSubnetGroup,
}

var DescribeDBSubnetGroups = &adapter.Operation[rds.DescribeDBSubnetGroupsInput, rds.DescribeDBSubnetGroupsOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBSubnetGroups",
		Description: "Lists DB subnet groups",
		Select:      "DBSubnetGroups",
		Params:      append(params(optional("DBSubnetGroupName")), listParams()...),
		Paging:      paged(),
	},
	Call: rdsapi.API.DescribeDBSubnetGroups,
}
