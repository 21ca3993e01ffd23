package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var parameterGroups = []adapter.Descriptor{
	CreateDBParameterGroup,
	ModifyDBParameterGroup,
	ResetDBParameterGroup,
	DeleteDBParameterGroup,
	DescribeDBParameterGroups,
	DescribeDBParameters,
	CreateDBClusterParameterGroup,
	DeleteDBClusterParameterGroup,
	DescribeDBClusterParameterGroups,
}

func parameterList() adapter.Param {
	return describe(mapped("Parameter", "Parameters", adapter.KindParameters),
		"parameters, as Name=Value[:immediate|pending-reboot]")
}

var CreateDBParameterGroup = &adapter.Operation[rds.CreateDBParameterGroupInput, rds.CreateDBParameterGroupOutput]{
	Info: adapter.Info{
		Name:        "CreateDBParameterGroup",
		Description: "Creates a DB parameter group",
		Target:      "DBParameterGroupName",
		Select:      "DBParameterGroup",
		Params: params(
			required("DBParameterGroupName"),
			describe(required("DBParameterGroupFamily"), "engine family, such as postgres16"),
			required("Description"),
			tags(),
		),
	},
	Call: rdsapi.API.CreateDBParameterGroup,
}

var ModifyDBParameterGroup = &adapter.Operation[rds.ModifyDBParameterGroupInput, rds.ModifyDBParameterGroupOutput]{
	Info: adapter.Info{
		Name:        "ModifyDBParameterGroup",
		Description: "Changes parameters of a DB parameter group",
		Target:      "DBParameterGroupName",
		Select:      "DBParameterGroupName",
		Params: params(
			required("DBParameterGroupName"),
			mandatory(parameterList()),
		),
	},
	Call: rdsapi.API.ModifyDBParameterGroup,
}

var ResetDBParameterGroup = &adapter.Operation[rds.ResetDBParameterGroupInput, rds.ResetDBParameterGroupOutput]{
	Info: adapter.Info{
		Name:        "ResetDBParameterGroup",
		Description: "Resets parameters of a DB parameter group to engine defaults",
		Destructive: true,
		Target:      "DBParameterGroupName",
		Select:      "DBParameterGroupName",
		Params: params(
			required("DBParameterGroupName"),
			typed("ResetAllParameters", adapter.KindBool),
			parameterList(),
		),
	},
	Call: rdsapi.API.ResetDBParameterGroup,
}

var DeleteDBParameterGroup = &adapter.Operation[rds.DeleteDBParameterGroupInput, rds.DeleteDBParameterGroupOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBParameterGroup",
		Description: "Deletes a DB parameter group",
		Destructive: true,
		Target:      "DBParameterGroupName",
		Select:      adapter.SelectNone,
		PassThru:    "DBParameterGroupName",
		Params:      params(required("DBParameterGroupName")),
	},
	Call: rdsapi.API.DeleteDBParameterGroup,
}

var DescribeDBParameterGroups = &adapter.Operation[rds.DescribeDBParameterGroupsInput, rds.DescribeDBParameterGroupsOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBParameterGroups",
		Description: "Lists DB parameter groups",
		Select:      "DBParameterGroups",
		Params:      append(params(optional("DBParameterGroupName")), listParams()...),
		Paging:      paged(),
	},
	Call: rdsapi.API.DescribeDBParameterGroups,
}

var DescribeDBParameters = &adapter.Operation[rds.DescribeDBParametersInput, rds.DescribeDBParametersOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBParameters",
		Description: "Lists the parameters of a DB parameter group",
		Select:      "Parameters",
		Params: append(params(
			required("DBParameterGroupName"),
			describe(optional("Source"), "user, system or engine-default"),
		), listParams()...),
		Paging: paged(),
	},
	Call: rdsapi.API.DescribeDBParameters,
}

var CreateDBClusterParameterGroup = &adapter.Operation[rds.CreateDBClusterParameterGroupInput, rds.CreateDBClusterParameterGroupOutput]{
	Info: adapter.Info{
		Name:        "CreateDBClusterParameterGroup",
		Description: "Creates a DB cluster parameter group",
		Target:      "DBClusterParameterGroupName",
		Select:      "DBClusterParameterGroup",
		Params: params(
			required("DBClusterParameterGroupName"),
			required("DBParameterGroupFamily"),
			required("Description"),
			tags(),
		),
	},
	Call: rdsapi.API.CreateDBClusterParameterGroup,
}

var DeleteDBClusterParameterGroup = &adapter.Operation[rds.DeleteDBClusterParameterGroupInput, rds.DeleteDBClusterParameterGroupOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBClusterParameterGroup",
		Description: "Deletes a DB cluster parameter group",
		Destructive: true,
		Target:      "DBClusterParameterGroupName",
		Select:      adapter.SelectNone,
		PassThru:    "DBClusterParameterGroupName",
		Params:      params(required("DBClusterParameterGroupName")),
	},
	Call: rdsapi.API.DeleteDBClusterParameterGroup,
}

var DescribeDBClusterParameterGroups = &adapter.Operation[rds.DescribeDBClusterParameterGroupsInput, rds.DescribeDBClusterParameterGroupsOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBClusterParameterGroups",
		Description: "Lists DB cluster parameter groups",
		Select:      "DBClusterParameterGroups",
		Params:      append(params(optional("DBClusterParameterGroupName")), listParams()...),
		Paging:      paged(),
	},
	Call: rdsapi.API.DescribeDBClusterParameterGroups,
}
