package main

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/dase955/VectorDBBench/cases"
	"github.com/dase955/VectorDBBench/config"
	"github.com/dase955/VectorDBBench/dataset"
)

var (
	prepareSource      string
	prepareRoot        string
	prepareBucket      string
	preparePrefix      string
	prepareEndpoint    string
	prepareCacheDir    string
	prepareConcurrency int
	prepareBandwidth   int64
)

var prepareCmd = &cobra.Command{
	Use:   "prepare <case>",
	Short: "Fetch the dataset slice a case runs against",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var c *cases.Case
		if customFile != "" {
			var err error
			if c, err = cases.LoadCustom(customFile); err != nil {
				return err
			}
		} else {
			if len(args) == 0 {
				return fmt.Errorf("a case identifier or a spec file (-f) is required")
			}
			id, err := cases.ParseCaseType(args[0])
			if err != nil {
				return err
			}
			if c, err = cases.Resolve(id); err != nil {
				return err
			}
		}

		src, err := newSource(cmd)
		if err != nil {
			return err
		}

		logger := newLogger()
		err = c.Dataset.Prepare(cmd.Context(), src,
			dataset.WithCacheDir(prepareCacheDir),
			dataset.WithConcurrency(prepareConcurrency),
			dataset.WithThrottle(dataset.NewThrottle(int64(prepareConcurrency), prepareBandwidth)),
			dataset.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		fmt.Printf("prepared %s: %d records\n", c.Dataset.Data().Name, c.Dataset.RecordCount())

		f, err := c.Filters()
		if err != nil {
			return err
		}
		if f != nil {
			fmt.Printf("filter predicate: %s %s\n", f.Field, f.Expr())
		}
		return nil
	},
}

func newSource(cmd *cobra.Command) (dataset.Source, error) {
	switch prepareSource {
	case "local":
		if prepareRoot == "" {
			return nil, fmt.Errorf("--root is required for the local source")
		}
		return dataset.NewLocalSource(prepareRoot), nil
	case "s3":
		return dataset.NewS3Source(cmd.Context(), prepareBucket, preparePrefix)
	case "minio":
		if prepareEndpoint == "" {
			return nil, fmt.Errorf("--endpoint is required for the minio source")
		}
		client, err := minio.New(prepareEndpoint, &minio.Options{
			Creds:  credentials.NewEnvMinio(),
			Secure: true,
		})
		if err != nil {
			return nil, err
		}
		return dataset.NewMinIOSource(client, prepareBucket, preparePrefix), nil
	default:
		return nil, fmt.Errorf("unknown source %q (local, s3, minio)", prepareSource)
	}
}

func init() {
	prepareCmd.Flags().StringVar(&prepareSource, "source", "s3", "shard source: local, s3 or minio")
	prepareCmd.Flags().StringVar(&prepareRoot, "root", "", "root directory of the local source")
	prepareCmd.Flags().StringVar(&prepareBucket, "bucket", config.DefaultBucket, "bucket holding the dataset shards")
	prepareCmd.Flags().StringVar(&preparePrefix, "prefix", "", "key prefix inside the bucket")
	prepareCmd.Flags().StringVar(&prepareEndpoint, "endpoint", "", "minio endpoint host:port")
	prepareCmd.Flags().StringVar(&prepareCacheDir, "cache-dir", config.DefaultCacheDir, "local shard cache directory")
	prepareCmd.Flags().IntVar(&prepareConcurrency, "concurrency", 4, "parallel shard downloads")
	prepareCmd.Flags().Int64Var(&prepareBandwidth, "bandwidth", 0, "aggregate download bytes/sec (0 = unlimited)")
	prepareCmd.Flags().StringVarP(&customFile, "file", "f", "", "custom case YAML spec (overrides <case>)")
	rootCmd.AddCommand(prepareCmd)
}
