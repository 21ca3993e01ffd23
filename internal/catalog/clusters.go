package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var clusters = []adapter.Descriptor{
	AddRoleToDBCluster,
	RemoveRoleFromDBCluster,
	CreateDBCluster,
	ModifyDBCluster,
	DeleteDBCluster,
	StartDBCluster,
	StopDBCluster,
	FailoverDBCluster,
	DescribeDBClusters,
}

var AddRoleToDBCluster = &adapter.Operation[rds.AddRoleToDBClusterInput, rds.AddRoleToDBClusterOutput]{
	Info: adapter.Info{
		Name:        "AddRoleToDBCluster",
		Description: "Associates an IAM role with a DB cluster",
		Target:      "DBClusterIdentifier",
		Select:      adapter.SelectNone,
		PassThru:    "RoleArn",
		Params: params(
			required("DBClusterIdentifier"),
			required("RoleArn"),
			optional("FeatureName"),
		),
	},
	Call: rdsapi.API.AddRoleToDBCluster,
}

var RemoveRoleFromDBCluster = &adapter.Operation[rds.RemoveRoleFromDBClusterInput, rds.RemoveRoleFromDBClusterOutput]{
	Info: adapter.Info{
		Name:        "RemoveRoleFromDBCluster",
		Description: "Disassociates an IAM role from a DB cluster",
		Destructive: true,
		Target:      "DBClusterIdentifier",
		Select:      adapter.SelectNone,
		PassThru:    "RoleArn",
		Params: params(
			required("DBClusterIdentifier"),
			required("RoleArn"),
			optional("FeatureName"),
		),
	},
	Call: rdsapi.API.RemoveRoleFromDBCluster,
}

// scalingParams flatten the Aurora Serverless option structs into
// individual parameters.
func scalingParams() []adapter.Param {
	return []adapter.Param{
		mapped("ScalingConfiguration_MinCapacity", "ScalingConfiguration.MinCapacity", adapter.KindInt),
		mapped("ScalingConfiguration_MaxCapacity", "ScalingConfiguration.MaxCapacity", adapter.KindInt),
		mapped("ScalingConfiguration_AutoPause", "ScalingConfiguration.AutoPause", adapter.KindBool),
		mapped("ScalingConfiguration_SecondsUntilAutoPause", "ScalingConfiguration.SecondsUntilAutoPause", adapter.KindInt),
		mapped("ScalingConfiguration_TimeoutAction", "ScalingConfiguration.TimeoutAction", adapter.KindString),
		mapped("ServerlessV2ScalingConfiguration_MinCapacity", "ServerlessV2ScalingConfiguration.MinCapacity", adapter.KindFloat),
		mapped("ServerlessV2ScalingConfiguration_MaxCapacity", "ServerlessV2ScalingConfiguration.MaxCapacity", adapter.KindFloat),
	}
}

var CreateDBCluster = &adapter.Operation[rds.CreateDBClusterInput, rds.CreateDBClusterOutput]{
	Info: adapter.Info{
		Name:        "CreateDBCluster",
		Description: "Creates a new Aurora or Multi-AZ DB cluster",
		Target:      "DBClusterIdentifier",
		Select:      "DBCluster",
		Params: append(params(
			required("DBClusterIdentifier"),
			required("Engine"),
			optional("EngineVersion"),
			optional("EngineMode"),
			optional("MasterUsername"),
			optional("MasterUserPassword"),
			typed("ManageMasterUserPassword", adapter.KindBool),
			optional("DatabaseName"),
			optional("DBClusterParameterGroupName"),
			optional("DBSubnetGroupName"),
			typed("VpcSecurityGroupIds", adapter.KindStrings),
			typed("AvailabilityZones", adapter.KindStrings),
			typed("Port", adapter.KindInt),
			typed("BackupRetentionPeriod", adapter.KindInt),
			typed("StorageEncrypted", adapter.KindBool),
			optional("KmsKeyId"),
			optional("GlobalClusterIdentifier"),
			typed("EnableHttpEndpoint", adapter.KindBool),
			typed("CopyTagsToSnapshot", adapter.KindBool),
			typed("DeletionProtection", adapter.KindBool),
			tags(),
		), scalingParams()...),
	},
	Call: rdsapi.API.CreateDBCluster,
}

var ModifyDBCluster = &adapter.Operation[rds.ModifyDBClusterInput, rds.ModifyDBClusterOutput]{
	Info: adapter.Info{
		Name:        "ModifyDBCluster",
		Description: "Modifies settings of a DB cluster",
		Target:      "DBClusterIdentifier",
		Select:      "DBCluster",
		Params: append(params(
			required("DBClusterIdentifier"),
			optional("NewDBClusterIdentifier"),
			typed("ApplyImmediately", adapter.KindBool),
			typed("BackupRetentionPeriod", adapter.KindInt),
			optional("DBClusterParameterGroupName"),
			typed("VpcSecurityGroupIds", adapter.KindStrings),
			typed("Port", adapter.KindInt),
			optional("MasterUserPassword"),
			optional("EngineVersion"),
			typed("AllowMajorVersionUpgrade", adapter.KindBool),
			typed("EnableHttpEndpoint", adapter.KindBool),
			typed("CopyTagsToSnapshot", adapter.KindBool),
			typed("DeletionProtection", adapter.KindBool),
		), scalingParams()...),
	},
	Call: rdsapi.API.ModifyDBCluster,
}

var DeleteDBCluster = &adapter.Operation[rds.DeleteDBClusterInput, rds.DeleteDBClusterOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBCluster",
		Description: "Deletes a DB cluster",
		Destructive: true,
		Target:      "DBClusterIdentifier",
		Select:      "DBCluster",
		Params: params(
			required("DBClusterIdentifier"),
			typed("SkipFinalSnapshot", adapter.KindBool),
			optional("FinalDBSnapshotIdentifier"),
			typed("DeleteAutomatedBackups", adapter.KindBool),
		),
	},
	Call: rdsapi.API.DeleteDBCluster,
}

var StartDBCluster = &adapter.Operation[rds.StartDBClusterInput, rds.StartDBClusterOutput]{
	Info: adapter.Info{
		Name:        "StartDBCluster",
		Description: "Starts a stopped DB cluster",
		Target:      "DBClusterIdentifier",
		Select:      "DBCluster",
		Params:      params(required("DBClusterIdentifier")),
	},
	Call: rdsapi.API.StartDBCluster,
}

var StopDBCluster = &adapter.Operation[rds.StopDBClusterInput, rds.StopDBClusterOutput]{
	Info: adapter.Info{
		Name:        "StopDBCluster",
		Description: "Stops a running DB cluster",
		Destructive: true,
		Target:      "DBClusterIdentifier",
		Select:      "DBCluster",
		Params:      params(required("DBClusterIdentifier")),
	},
	Call: rdsapi.API.StopDBCluster,
}

var FailoverDBCluster = &adapter.Operation[rds.FailoverDBClusterInput, rds.FailoverDBClusterOutput]{
	Info: adapter.Info{
		Name:        "FailoverDBCluster",
		Description: "Forces a failover of a DB cluster",
		Destructive: true,
		Target:      "DBClusterIdentifier",
		Select:      "DBCluster",
		Params: params(
			required("DBClusterIdentifier"),
			describe(optional("TargetDBInstanceIdentifier"), "reader instance to promote"),
		),
	},
	Call: rdsapi.API.FailoverDBCluster,
}

var DescribeDBClusters = &adapter.Operation[rds.DescribeDBClustersInput, rds.DescribeDBClustersOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBClusters",
		Description: "Lists DB clusters",
		Select:      "DBClusters",
		Params: append(params(
			optional("DBClusterIdentifier"),
			typed("IncludeShared", adapter.KindBool),
		), listParams()...),
		Paging: paged(),
	},
	Call: rdsapi.API.DescribeDBClusters,
}
