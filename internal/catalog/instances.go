package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/rdsctl/rdsctl/internal/adapter"
	rdsapi "github.com/rdsctl/rdsctl/internal/rds"
)

var instances = []adapter.Descriptor{
	AddRoleToDBInstance,
	RemoveRoleFromDBInstance,
	CreateDBInstance,
	ModifyDBInstance,
	DeleteDBInstance,
	RebootDBInstance,
	StartDBInstance,
	StopDBInstance,
	DescribeDBInstances,
	RestoreDBInstanceFromDBSnapshot,
}

// AddRoleToDBInstance associates an IAM role with a DB instance. The
// response carries no data; with pass-through the role ARN is returned.
var AddRoleToDBInstance = &adapter.Operation[rds.AddRoleToDBInstanceInput, rds.AddRoleToDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "AddRoleToDBInstance",
		Description: "Associates an IAM role with a DB instance",
		Target:      "DBInstanceIdentifier",
		Select:      adapter.SelectNone,
		PassThru:    "RoleArn",
		Params: params(
			required("DBInstanceIdentifier"),
			describe(required("RoleArn"), "ARN of the IAM role to associate"),
			describe(optional("FeatureName"), "feature the role is used for, such as S3_INTEGRATION"),
		),
	},
	Call: rdsapi.API.AddRoleToDBInstance,
}

var RemoveRoleFromDBInstance = &adapter.Operation[rds.RemoveRoleFromDBInstanceInput, rds.RemoveRoleFromDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "RemoveRoleFromDBInstance",
		Description: "Disassociates an IAM role from a DB instance",
		Destructive: true,
		Target:      "DBInstanceIdentifier",
		Select:      adapter.SelectNone,
		PassThru:    "RoleArn",
		Params: params(
			required("DBInstanceIdentifier"),
			required("RoleArn"),
			required("FeatureName"),
		),
	},
	Call: rdsapi.API.RemoveRoleFromDBInstance,
}

var CreateDBInstance = &adapter.Operation[rds.CreateDBInstanceInput, rds.CreateDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "CreateDBInstance",
		Description: "Creates a new DB instance",
		Target:      "DBInstanceIdentifier",
		Select:      "DBInstance",
		Params: params(
			required("DBInstanceIdentifier"),
			required("DBInstanceClass"),
			required("Engine"),
			optional("EngineVersion"),
			typed("AllocatedStorage", adapter.KindInt),
			optional("StorageType"),
			typed("Iops", adapter.KindInt),
			optional("MasterUsername"),
			optional("MasterUserPassword"),
			typed("ManageMasterUserPassword", adapter.KindBool),
			optional("DBName"),
			optional("DBClusterIdentifier"),
			optional("AvailabilityZone"),
			optional("DBSubnetGroupName"),
			optional("DBParameterGroupName"),
			typed("VpcSecurityGroupIds", adapter.KindStrings),
			typed("MultiAZ", adapter.KindBool),
			typed("PubliclyAccessible", adapter.KindBool),
			typed("StorageEncrypted", adapter.KindBool),
			optional("KmsKeyId"),
			typed("BackupRetentionPeriod", adapter.KindInt),
			optional("PreferredBackupWindow"),
			optional("PreferredMaintenanceWindow"),
			typed("Port", adapter.KindInt),
			optional("LicenseModel"),
			typed("CopyTagsToSnapshot", adapter.KindBool),
			typed("AutoMinorVersionUpgrade", adapter.KindBool),
			typed("DeletionProtection", adapter.KindBool),
			tags(),
		),
	},
	Call: rdsapi.API.CreateDBInstance,
}

var ModifyDBInstance = &adapter.Operation[rds.ModifyDBInstanceInput, rds.ModifyDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "ModifyDBInstance",
		Description: "Modifies settings of a DB instance",
		Target:      "DBInstanceIdentifier",
		Select:      "DBInstance",
		Params: params(
			required("DBInstanceIdentifier"),
			optional("NewDBInstanceIdentifier"),
			optional("DBInstanceClass"),
			typed("AllocatedStorage", adapter.KindInt),
			optional("StorageType"),
			typed("Iops", adapter.KindInt),
			describe(typed("ApplyImmediately", adapter.KindBool), "apply now instead of during the maintenance window"),
			optional("MasterUserPassword"),
			optional("EngineVersion"),
			typed("AllowMajorVersionUpgrade", adapter.KindBool),
			typed("BackupRetentionPeriod", adapter.KindInt),
			typed("MultiAZ", adapter.KindBool),
			optional("DBParameterGroupName"),
			typed("VpcSecurityGroupIds", adapter.KindStrings),
			typed("PubliclyAccessible", adapter.KindBool),
			typed("DeletionProtection", adapter.KindBool),
			optional("CACertificateIdentifier"),
			optional("PreferredMaintenanceWindow"),
		),
	},
	Call: rdsapi.API.ModifyDBInstance,
}

var DeleteDBInstance = &adapter.Operation[rds.DeleteDBInstanceInput, rds.DeleteDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "DeleteDBInstance",
		Description: "Deletes a DB instance",
		Destructive: true,
		Target:      "DBInstanceIdentifier",
		Select:      "DBInstance",
		Params: params(
			required("DBInstanceIdentifier"),
			describe(typed("SkipFinalSnapshot", adapter.KindBool), "delete without taking a final snapshot"),
			optional("FinalDBSnapshotIdentifier"),
			typed("DeleteAutomatedBackups", adapter.KindBool),
		),
	},
	Call: rdsapi.API.DeleteDBInstance,
}

var RebootDBInstance = &adapter.Operation[rds.RebootDBInstanceInput, rds.RebootDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "RebootDBInstance",
		Description: "Reboots a DB instance",
		Destructive: true,
		Target:      "DBInstanceIdentifier",
		Select:      "DBInstance",
		Params: params(
			required("DBInstanceIdentifier"),
			typed("ForceFailover", adapter.KindBool),
		),
	},
	Call: rdsapi.API.RebootDBInstance,
}

var StartDBInstance = &adapter.Operation[rds.StartDBInstanceInput, rds.StartDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "StartDBInstance",
		Description: "Starts a stopped DB instance",
		Target:      "DBInstanceIdentifier",
		Select:      "DBInstance",
		Params:      params(required("DBInstanceIdentifier")),
	},
	Call: rdsapi.API.StartDBInstance,
}

var StopDBInstance = &adapter.Operation[rds.StopDBInstanceInput, rds.StopDBInstanceOutput]{
	Info: adapter.Info{
		Name:        "StopDBInstance",
		Description: "Stops a running DB instance",
		Destructive: true,
		Target:      "DBInstanceIdentifier",
		Select:      "DBInstance",
		Params: params(
			required("DBInstanceIdentifier"),
			describe(optional("DBSnapshotIdentifier"), "snapshot to take before stopping"),
		),
	},
	Call: rdsapi.API.StopDBInstance,
}

var DescribeDBInstances = &adapter.Operation[rds.DescribeDBInstancesInput, rds.DescribeDBInstancesOutput]{
	Info: adapter.Info{
		Name:        "DescribeDBInstances",
		Description: "Lists DB instances",
		Select:      "DBInstances",
		Params:      append(params(optional("DBInstanceIdentifier")), listParams()...),
		Paging:      paged(),
	},
	Call: rdsapi.API.DescribeDBInstances,
}

var RestoreDBInstanceFromDBSnapshot = &adapter.Operation[rds.RestoreDBInstanceFromDBSnapshotInput, rds.RestoreDBInstanceFromDBSnapshotOutput]{
	Info: adapter.Info{
		Name:        "RestoreDBInstanceFromDBSnapshot",
		Description: "Creates a DB instance from a DB snapshot",
		Target:      "DBInstanceIdentifier",
		Select:      "DBInstance",
		Params: params(
			required("DBInstanceIdentifier"),
			optional("DBSnapshotIdentifier"),
			optional("DBClusterSnapshotIdentifier"),
			optional("DBInstanceClass"),
			optional("Engine"),
			optional("StorageType"),
			typed("Port", adapter.KindInt),
			optional("AvailabilityZone"),
			optional("DBSubnetGroupName"),
			optional("DBParameterGroupName"),
			typed("VpcSecurityGroupIds", adapter.KindStrings),
			typed("MultiAZ", adapter.KindBool),
			typed("PubliclyAccessible", adapter.KindBool),
			typed("DeletionProtection", adapter.KindBool),
			tags(),
		),
	},
	Call: rdsapi.API.RestoreDBInstanceFromDBSnapshot,
}
