package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

func sesClient() (*ses.Client, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return ses.NewFromConfig(cfg), nil
}

func sendEmail(to, subject, body string) error {
	client, err := sesClient()
	if err != nil {
		return err
	}
	sender := os.Getenv("SES_SENDER")
	if sender == "" {
		return fmt.Errorf("SES_SENDER not set")
	}

	_, err = client.SendEmail(context.TODO(), &ses.SendEmailInput{
		Source:      aws.String(sender),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body:    &types.Body{Text: &types.Content{Data: aws.String(body)}},
		},
	})
	return err
}

func SendVerificationEmail(to, code string) error {
	body := fmt.Sprintf("Your verification code is %s. It expires in 24 hours.", code)
	return sendEmail(to, "Verify your account", body)
}

func SendResetEmail(to, code string) error {
	body := fmt.Sprintf("Your password reset code is %s. It expires in 15 minutes.", code)
	return sendEmail(to, "Password reset", body)
}
