// Package fit estimates distribution parameters by maximum likelihood.
//
// The negative mean log-likelihood is built on an autodiff backend from the
// density evaluators, and minimized with Adam over unconstrained working
// parameters (log scale for positive parameters, logit scale for (0, 1)).
// The learning rate is halved whenever the loss increases.
package fit
