package tts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"github.com/aws/smithy-go"
)

// PollyConfig holds the AWS credentials and region for the Polly backend.
type PollyConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string // default: "us-east-1"
}

// Polly synthesizes speech using AWS Polly.
type Polly struct {
	client *polly.Client
	region string
}

// NewPolly builds a Polly provider and verifies it can reach the service by
// listing the Arabic voices. A failure here means the gateway should run in
// degraded mode rather than crash.
func NewPolly(ctx context.Context, cfg PollyConfig) (*Polly, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("aws credentials missing (set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY)")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	p := &Polly{client: polly.NewFromConfig(awsCfg), region: cfg.Region}

	if _, err := p.client.DescribeVoices(ctx, &polly.DescribeVoicesInput{
		LanguageCode: types.LanguageCodeArb,
	}); err != nil {
		return nil, fmt.Errorf("describe voices: %w", translateError(err))
	}

	return p, nil
}

func (p *Polly) Name() string { return "aws-polly" }

// Region returns the region the client was configured with.
func (p *Polly) Region() string { return p.region }

// Synthesize converts text to MP3 audio via Polly.
func (p *Polly) Synthesize(ctx context.Context, req Request) (*Result, error) {
	input := &polly.SynthesizeSpeechInput{
		Text:         aws.String(req.Text),
		OutputFormat: types.OutputFormatMp3,
		VoiceId:      types.VoiceId(req.VoiceID),
		LanguageCode: types.LanguageCode(req.LanguageCode),
		Engine:       types.Engine(req.Engine),
	}
	if req.SSML {
		input.TextType = types.TextTypeSsml
	} else {
		input.TextType = types.TextTypeText
	}

	out, err := p.client.SynthesizeSpeech(ctx, input)
	if err != nil {
		return nil, translateError(err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("read audio stream: %w", err)
	}

	return &Result{Audio: audio, ContentType: "audio/mpeg"}, nil
}

// translateError maps AWS API rejections onto ProviderError so handlers can
// forward the provider's code and message.
func translateError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
	}
	return err
}
