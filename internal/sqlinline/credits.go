package sqlinline

const QEnsureCreditAccount = `--sql e4a7eab0-5322-47fd-918e-146ec2cc0a97
insert into credits (user_id, gift_credit, paid_credit, updated_at)
values ($1::text, 0, 0, now())
on conflict (user_id) do nothing;
`

const QSelectCreditAccount = `--sql d5f1483d-0b1f-4965-8634-2aef82c4c4fc
select user_id, gift_credit, paid_credit, last_gift_reset, updated_at
from credits
where user_id = $1::text
limit 1;
`

// Single-statement upsert so the increment and the reset stamp apply
// atomically even when the account row does not exist yet.
const QGrantGiftCredit = `--sql 35f95350-9226-49cd-a946-bbd1b4f25ecf
insert into credits (user_id, gift_credit, paid_credit, last_gift_reset, updated_at)
values ($1::text, $2::int, 0, now(), now())
on conflict (user_id) do update set
    gift_credit     = credits.gift_credit + excluded.gift_credit,
    last_gift_reset = now(),
    updated_at      = now();
`

const QGrantPaidCredit = `--sql 943582ab-f276-48e7-8f38-08a40bda1bfa
insert into credits (user_id, gift_credit, paid_credit, updated_at)
values ($1::text, 0, $2::int, now())
on conflict (user_id) do update set
    paid_credit = credits.paid_credit + excluded.paid_credit,
    updated_at  = now();
`

const QInsertCreditTransaction = `--sql 1a036414-48f4-402e-b56b-b3b78f9461c6
insert into credit_transactions (id, user_id, kind, amount, reason, product_id, purchase_id, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::int, $4::text, $5::text, $6::text, now());
`
