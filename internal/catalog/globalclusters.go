package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var globalClusters = []adapter.Descriptor{
	CreateGlobalCluster,
	ModifyGlobalCluster,
	RemoveFromGlobalCluster,
	FailoverGlobalCluster,
	DeleteGlobalCluster,
	DescribeGlobalClusters,
}

var CreateGlobalCluster = &adapter.Operation[rds.CreateGlobalClusterInput, rds.CreateGlobalClusterOutput]{
	Info: adapter.Info{
		Name:        "CreateGlobalCluster",
		Description: "Creates an Aurora global database",
		Target:      "GlobalClusterIdentifier",
		Select:      "GlobalCluster",
		Params: params(
			required("GlobalClusterIdentifier"),
			describe(optional("SourceDBClusterIdentifier"), "ARN of the cluster to use as primary"),
			optional("Engine"),
			optional("EngineVersion"),
			optional("DatabaseName"),
			typed("StorageEncrypted", adapter.KindBool),
			typed("DeletionProtection", adapter.KindBool),
		),
	},
	Call: rdsapi.API.CreateGlobalCluster,
}

var ModifyGlobalCluster = &adapter.Operation[rds.ModifyGlobalClusterInput, rds.ModifyGlobalClusterOutput]{
	Info: adapter.Info{
		Name:        "ModifyGlobalCluster",
		Description: "Modifies an Aurora global database",
		Target:      "GlobalClusterIdentifier",
		Select:      "GlobalCluster",
		Params: params(
			required("GlobalClusterIdentifier"),
			optional("NewGlobalClusterIdentifier"),
			optional("EngineVersion"),
			typed("AllowMajorVersionUpgrade", adapter.KindBool),
			typed("DeletionProtection", adapter.KindBool),
		),
	},
	Call: rdsapi.API.ModifyGlobalCluster,
}

var RemoveFromGlobalCluster = &adapter.Operation[rds.RemoveFromGlobalClusterInput, rds.RemoveFromGlobalClusterOutput]{
	Info: adapter.Info{
		Name:        "RemoveFromGlobalCluster",
		Description: "Detaches a cluster from an Aurora global database",
		Destructive: true,
		Target:      "DbClusterIdentifier",
		Select:      "GlobalCluster",
		Params: params(
			required("GlobalClusterIdentifier"),
			describe(required("DbClusterIdentifier"), "ARN of the cluster to detach"),
		),
	},
	Call: rdsapi.API.RemoveFromGlobalCluster,
}

var FailoverGlobalCluster = &adapter.Operation[rds.FailoverGlobalClusterInput, rds.FailoverGlobalClusterOutput]{
	Info: adapter.Info{
		Name:        "FailoverGlobalCluster",
		Description: "Promotes a secondary cluster of an Aurora global database",
		Destructive: true,
		Target:      "GlobalClusterIdentifier",
		Select:      "GlobalCluster",
		Params: params(
			required("GlobalClusterIdentifier"),
			required("TargetDbClusterIdentifier"),
			describe(typed("AllowDataLoss", adapter.KindBool), "fail over even if replication lags"),
			describe(typed("Switchover", adapter.KindBool), "perform a planned switchover"),
		),
	},
	Call: rdsapi.API.FailoverGlobalCluster,
}

var DeleteGlobalCluster = &adapter.Operation[rds.DeleteGlobalClusterInput, rds.DeleteGlobalClusterOutput]{
	Info: adapter.Info{
		Name:        "DeleteGlobalCluster",
		Description: "Deletes an Aurora global database",
		Destructive: true,
		Target:      "GlobalClusterIdentifier",
		Select:      "GlobalCluster",
		Params:      params(required("GlobalClusterIdentifier")),
	},
	Call: rdsapi.API.DeleteGlobalCluster,
}

var DescribeGlobalClusters = &adapter.Operation[rds.DescribeGlobalClustersInput, rds.DescribeGlobalClustersOutput]{
	Info: adapter.Info{
		Name:        "DescribeGlobalClusters",
		Description: "Lists Aurora global databases",
		Select:      "GlobalClusters",
		Params:      append(params(optional("GlobalClusterIdentifier")), listParams()...),
		Paging:      paged(),
	},
	Call: rdsapi.API.DescribeGlobalClusters,
}
