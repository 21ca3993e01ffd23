package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var securityGroups = []adapter.Descriptor{
	CreateDBSecurityGroup,
	AuthorizeDBSecurityGroupIngress,
	RevokeDBSecurityGroupIngress,
	DeleteDBSecurityGroup,
	DescribeDBSecurityGroups,
}

func ingressParams() []adapter.Param {
	return params(
		required("DBSecurityGroupName"),
		describe(optional("CIDRIP"), "IP range to authorize, in CIDR notation"),
		optional("EC2SecurityGroupId"),
		optional("EC2SecurityGroupName"),
		optional("EC2SecurityGroupOwnerId"),
	)
}

var CreateDBSecurityGroup = &adapter.Operation[rds.CreateDBSecurityGroupInput, rds.CreateDBSecurityGroupOutput]{
	Info: adapter.Info{
		Name:        "CreateDBSecurityGroup",
		Description: "Creates a DB security group",
		Target:      "DBSecurityGroupName",
		Select:      "DBSecurityGroup",
		Params: params(
			required("DBSecurityGroupName"),
			required("DBSecurityGroupDescription"),
			tags(),
		),
	},
	Call: rdsapi.API.CreateDBSecurityGroup,
}

var AuthorizeDBSecurityGroupIngress = &adapter.Operation[rds.AuthorizeDBSecurityGroupIngressInput, rds.AuthorizeDBSecurityGroupIngressOutput]{
	Info: adapter.Info{
		Name:        "AuthorizeDBSecurityGroupIngress",
		Description: "Allows ingress to a DB security group",
		Target:      "DBSecurityGroupName",
		Select:      "DBSecurityGroup",
		Params:      ingressParams(),
	},
	Call: rdsapi.API.AuthorizeDBSecurityGroupIngress,
}

var RevokeDBSecurityGroupIngress = &adapter.Operation[rds.RevokeDBSecurityGroupIngressInput, rds.RevokeDBSecurityGroupIngressOutput]{
	Info: adapter.Info{
		Name:        "RevokeDBSecurityGroupIngress",
		Description: "Revokes ingress from a DB security group",
		Destructive: true,
		Target:      "DBSecurityGroupName",
		Select:      "DBSecurityGroup",
		Params:      ingressParams(),
	},
	Call: rdsapi.API.RevokeDBSecurityGroupIngress,
}

var DeleteDBSecurityGroup = &adapter.Operation[rds.DeleteDBSecurityGroupInput, rds.DeleteDBSecurityGroupOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBSecurityGroup",
		Description: "Deletes a DB security group",
		Destructive: true,
		Target:      "DBSecurityGroupName",
		Select:      adapter.SelectNone,
		PassThru:    "DBSecurityGroupName",
		Params:      params(required("DBSecurityGroupName")),
	},
	Call: rdsapi.API.DeleteDBSecurityGroup,
}

var DescribeDBSecurityGroups = &adapter.Operation[rds.DescribeDBSecurityGroupsInput, rds.DescribeDBSecurityGroupsOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBSecurityGroups",
		Description: "Lists DB security groups",
		Select:      "DBSecurityGroups",
		Params:      append(params(optional("DBSecurityGroupName")), listParams()...),
		Paging:      paged(),
	},
	Call: rdsapi.API.DescribeDBSecurityGroups,
}
