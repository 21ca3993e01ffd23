package rds

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/rds"
)

// API is the subset of the RDS client used by the operation catalog.
// Tests substitute fakes that embed API and override what they exercise.
type API interface {
	// Roles
	AddRoleToDBInstance(ctx context.Context, params *rds.AddRoleToDBInstanceInput, optFns ...func(*rds.Options)) (*rds.AddRoleToDBInstanceOutput, error)
	RemoveRoleFromDBInstance(ctx context.Context, params *rds.RemoveRoleFromDBInstanceInput, optFns ...func(*rds.Options)) (*rds.RemoveRoleFromDBInstanceOutput, error)
	AddRoleToDBCluster(ctx context.Context, params *rds.AddRoleToDBClusterInput, optFns ...func(*rds.Options)) (*rds.AddRoleToDBClusterOutput, error)
	RemoveRoleFromDBCluster(ctx context.Context, params *rds.RemoveRoleFromDBClusterInput, optFns ...func(*rds.Options)) (*rds.RemoveRoleFromDBClusterOutput, error)

	// DB instances
	CreateDBInstance(ctx context.Context, params *rds.CreateDBInstanceInput, optFns ...func(*rds.Options)) (*rds.CreateDBInstanceOutput, error)
	ModifyDBInstance(ctx context.Context, params *rds.ModifyDBInstanceInput, optFns ...func(*rds.Options)) (*rds.ModifyDBInstanceOutput, error)
	DeleteDBInstance(ctx context.Context, params *rds.DeleteDBInstanceInput, optFns ...func(*rds.Options)) (*rds.DeleteDBInstanceOutput, error)
	RebootDBInstance(ctx context.Context, params *rds.RebootDBInstanceInput, optFns ...func(*rds.Options)) (*rds.RebootDBInstanceOutput, error)
	StartDBInstance(ctx context.Context, params *rds.StartDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StartDBInstanceOutput, error)
	StopDBInstance(ctx context.Context, params *rds.StopDBInstanceInput, optFns ...func(*rds.Options)) (*rds.StopDBInstanceOutput, error)
	DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
	RestoreDBInstanceFromDBSnapshot(ctx context.Context, params *rds.RestoreDBInstanceFromDBSnapshotInput, optFns ...func(*rds.Options)) (*rds.RestoreDBInstanceFromDBSnapshotOutput, error)

	// DB clusters
	CreateDBCluster(ctx context.Context, params *rds.CreateDBClusterInput, optFns ...func(*rds.Options)) (*rds.CreateDBClusterOutput, error)
	ModifyDBCluster(ctx context.Context, params *rds.ModifyDBClusterInput, optFns ...func(*rds.Options)) (*rds.ModifyDBClusterOutput, error)
	DeleteDBCluster(ctx context.Context, params *rds.DeleteDBClusterInput, optFns ...func(*rds.Options)) (*rds.DeleteDBClusterOutput, error)
	StartDBCluster(ctx context.Context, params *rds.StartDBClusterInput, optFns ...func(*rds.Options)) (*rds.StartDBClusterOutput, error)
	StopDBCluster(ctx context.Context, params *rds.StopDBClusterInput, optFns ...func(*rds.Options)) (*rds.StopDBClusterOutput, error)
	FailoverDBCluster(ctx context.Context, params *rds.FailoverDBClusterInput, optFns ...func(*rds.Options)) (*rds.FailoverDBClusterOutput, error)
	DescribeDBClusters(ctx context.Context, params *rds.DescribeDBClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error)

	// Snapshots
	CreateDBSnapshot(ctx context.Context, params *rds.CreateDBSnapshotInput, optFns ...func(*rds.Options)) (*rds.CreateDBSnapshotOutput, error)
	CopyDBSnapshot(ctx context.Context, params *rds.CopyDBSnapshotInput, optFns ...func(*rds.Options)) (*rds.CopyDBSnapshotOutput, error)
	DeleteDBSnapshot(ctx context.Context, params *rds.DeleteDBSnapshotInput, optFns ...func(*rds.Options)) (*rds.DeleteDBSnapshotOutput, error)
	DescribeDBSnapshots(ctx context.Context, params *rds.DescribeDBSnapshotsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBSnapshotsOutput, error)
	CreateDBClusterSnapshot(ctx context.Context, params *rds.CreateDBClusterSnapshotInput, optFns ...func(*rds.Options)) (*rds.CreateDBClusterSnapshotOutput, error)
	CopyDBClusterSnapshot(ctx context.Context, params *rds.CopyDBClusterSnapshotInput, optFns ...func(*rds.Options)) (*rds.CopyDBClusterSnapshotOutput, error)
	DeleteDBClusterSnapshot(ctx context.Context, params *rds.DeleteDBClusterSnapshotInput, optFns ...func(*rds.Options)) (*rds.DeleteDBClusterSnapshotOutput, error)
	DescribeDBClusterSnapshots(ctx context.Context, params *rds.DescribeDBClusterSnapshotsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClusterSnapshotsOutput, error)

	// Parameter groups
	CreateDBParameterGroup(ctx context.Context, params *rds.CreateDBParameterGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBParameterGroupOutput, error)
	ModifyDBParameterGroup(ctx context.Context, params *rds.ModifyDBParameterGroupInput, optFns ...func(*rds.Options)) (*rds.ModifyDBParameterGroupOutput, error)
	ResetDBParameterGroup(ctx context.Context, params *rds.ResetDBParameterGroupInput, optFns ...func(*rds.Options)) (*rds.ResetDBParameterGroupOutput, error)
	DeleteDBParameterGroup(ctx context.Context, params *rds.DeleteDBParameterGroupInput, optFns ...func(*rds.Options)) (*rds.DeleteDBParameterGroupOutput, error)
	DescribeDBParameterGroups(ctx context.Context, params *rds.DescribeDBParameterGroupsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBParameterGroupsOutput, error)
	DescribeDBParameters(ctx context.Context, params *rds.DescribeDBParametersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBParametersOutput, error)
	CreateDBClusterParameterGroup(ctx context.Context, params *rds.CreateDBClusterParameterGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBClusterParameterGroupOutput, error)
	DeleteDBClusterParameterGroup(ctx context.Context, params *rds.DeleteDBClusterParameterGroupInput, optFns ...func(*rds.Options)) (*rds.DeleteDBClusterParameterGroupOutput, error)
	DescribeDBClusterParameterGroups(ctx context.Context, params *rds.DescribeDBClusterParameterGroupsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClusterParameterGroupsOutput, error)

	// Subnet groups
	CreateDBSubnetGroup(ctx context.Context, params *rds.CreateDBSubnetGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBSubnetGroupOutput, error)
	ModifyDBSubnetGroup(ctx context.Context, params *rds.ModifyDBSubnetGroupInput, optFns ...func(*rds.Options)) (*rds.ModifyDBSubnetGroupOutput, error)
	DeleteDBSubnetGroup(ctx context.Context, params *rds.DeleteDBSubnetGroupInput, optFns ...func(*rds.Options)) (*rds.DeleteDBSubnetGroupOutput, error)
	DescribeDBSubnetGroups(ctx context.Context, params *rds.DescribeDBSubnetGroupsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBSubnetGroupsOutput, error)

	// Security groups
	CreateDBSecurityGroup(ctx context.Context, params *rds.CreateDBSecurityGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBSecurityGroupOutput, error)
	AuthorizeDBSecurityGroupIngress(ctx context.Context, params *rds.AuthorizeDBSecurityGroupIngressInput, optFns ...func(*rds.Options)) (*rds.AuthorizeDBSecurityGroupIngressOutput, error)
	RevokeDBSecurityGroupIngress(ctx context.Context, params *rds.RevokeDBSecurityGroupIngressInput, optFns ...func(*rds.Options)) (*rds.RevokeDBSecurityGroupIngressOutput, error)
	DeleteDBSecurityGroup(ctx context.Context, params *rds.DeleteDBSecurityGroupInput, optFns ...func(*rds.Options)) (*rds.DeleteDBSecurityGroupOutput, error)
	DescribeDBSecurityGroups(ctx context.Context, params *rds.DescribeDBSecurityGroupsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBSecurityGroupsOutput, error)

	// Event subscriptions and events
	CreateEventSubscription(ctx context.Context, params *rds.CreateEventSubscriptionInput, optFns ...func(*rds.Options)) (*rds.CreateEventSubscriptionOutput, error)
	ModifyEventSubscription(ctx context.Context, params *rds.ModifyEventSubscriptionInput, optFns ...func(*rds.Options)) (*rds.ModifyEventSubscriptionOutput, error)
	AddSourceIdentifierToSubscription(ctx context.Context, params *rds.AddSourceIdentifierToSubscriptionInput, optFns ...func(*rds.Options)) (*rds.AddSourceIdentifierToSubscriptionOutput, error)
	RemoveSourceIdentifierFromSubscription(ctx context.Context, params *rds.RemoveSourceIdentifierFromSubscriptionInput, optFns ...func(*rds.Options)) (*rds.RemoveSourceIdentifierFromSubscriptionOutput, error)
	DeleteEventSubscription(ctx context.Context, params *rds.DeleteEventSubscriptionInput, optFns ...func(*rds.Options)) (*rds.DeleteEventSubscriptionOutput, error)
	DescribeEventSubscriptions(ctx context.Context, params *rds.DescribeEventSubscriptionsInput, optFns ...func(*rds.Options)) (*rds.DescribeEventSubscriptionsOutput, error)
	DescribeEvents(ctx context.Context, params *rds.DescribeEventsInput, optFns ...func(*rds.Options)) (*rds.DescribeEventsOutput, error)

	// Global clusters
	CreateGlobalCluster(ctx context.Context, params *rds.CreateGlobalClusterInput, optFns ...func(*rds.Options)) (*rds.CreateGlobalClusterOutput, error)
	ModifyGlobalCluster(ctx context.Context, params *rds.ModifyGlobalClusterInput, optFns ...func(*rds.Options)) (*rds.ModifyGlobalClusterOutput, error)
	RemoveFromGlobalCluster(ctx context.Context, params *rds.RemoveFromGlobalClusterInput, optFns ...func(*rds.Options)) (*rds.RemoveFromGlobalClusterOutput, error)
	FailoverGlobalCluster(ctx context.Context, params *rds.FailoverGlobalClusterInput, optFns ...func(*rds.Options)) (*rds.FailoverGlobalClusterOutput, error)
	DeleteGlobalCluster(ctx context.Context, params *rds.DeleteGlobalClusterInput, optFns ...func(*rds.Options)) (*rds.DeleteGlobalClusterOutput, error)
	DescribeGlobalClusters(ctx context.Context, params *rds.DescribeGlobalClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeGlobalClustersOutput, error)

	// Tags
	AddTagsToResource(ctx context.Context, params *rds.AddTagsToResourceInput, optFns ...func(*rds.Options)) (*rds.AddTagsToResourceOutput, error)
	RemoveTagsFromResource(ctx context.Context, params *rds.RemoveTagsFromResourceInput, optFns ...func(*rds.Options)) (*rds.RemoveTagsFromResourceOutput, error)
	ListTagsForResource(ctx context.Context, params *rds.ListTagsForResourceInput, optFns ...func(*rds.Options)) (*rds.ListTagsForResourceOutput, error)

	// Engine and logs
	DescribeDBEngineVersions(ctx context.Context, params *rds.DescribeDBEngineVersionsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBEngineVersionsOutput, error)
	DescribeDBLogFiles(ctx context.Context, params *rds.DescribeDBLogFilesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBLogFilesOutput, error)
}

var _ API = (*rds.Client)(nil)
